// Command mealshare-web serves the MealShare marketing site and dashboard:
// a read proxy to the hosted Appwrite database plus the session flow
// against the hosted auth service.
package main

import (
	"context"
	"crypto/rand"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aimanzahar/mealshare-web/appwrite"
	"github.com/aimanzahar/mealshare-web/config"
	"github.com/aimanzahar/mealshare-web/listings"
	"github.com/aimanzahar/mealshare-web/routes"
	"github.com/aimanzahar/mealshare-web/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded")
	}
	cfg := config.Load()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	signingKey := []byte(cfg.SessionSigningKey)
	if len(signingKey) == 0 {
		// Ephemeral key: sessions will not survive a restart.
		logger.Warn("SESSION_SIGNING_KEY not set, generating an ephemeral key")
		signingKey = make([]byte, 32)
		if _, err := rand.Read(signingKey); err != nil {
			logger.Fatal("generate session key", zap.Error(err))
		}
	}

	// Missing credentials are a normal state: the site degrades to an
	// empty feed and an anonymous-only experience.
	var gateway listings.DocumentLister
	if dbs := appwrite.NewServerDatabases(cfg.Endpoint, cfg.ProjectID, cfg.APIKey); dbs != nil {
		gateway = dbs
	} else {
		logger.Warn("server Appwrite credentials missing, live listings disabled")
	}
	listingSvc := listings.NewService(gateway, cfg.DatabaseID, cfg.CollectionID, cfg.ListingLimit, logger)

	sessions := session.NewClient(cfg.PublicEndpoint, cfg.PublicProjectID)
	if sessions == nil {
		logger.Warn("public Appwrite configuration missing, auth disabled")
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.NewRouter(&routes.App{
		Log:        logger,
		Listings:   listingSvc,
		Sessions:   sessions,
		SigningKey: signingKey,
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}

	logger.Info("shutdown complete")
}
