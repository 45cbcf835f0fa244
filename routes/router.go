// Package routes wires the HTTP surface: the landing/dashboard page, the
// login flow, and the JSON listings API.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aimanzahar/mealshare-web/listings"
	"github.com/aimanzahar/mealshare-web/middleware"
	"github.com/aimanzahar/mealshare-web/session"
	"github.com/aimanzahar/mealshare-web/web"
)

// App bundles the injected dependencies handlers close over. Sessions is
// nil when the public auth configuration is missing; handlers then render
// the anonymous experience and disable the login flow.
type App struct {
	Log        *zap.Logger
	Listings   *listings.Service
	Sessions   *session.Client
	SigningKey []byte
}

// NewRouter builds the gin engine with logging and recovery middleware and
// registers every route.
func NewRouter(app *App) *gin.Engine {
	if app.Log == nil {
		app.Log = zap.NewNop()
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(app.Log), middleware.Recover(app.Log))
	router.SetHTMLTemplate(web.Templates())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.GET("/listings", app.GetListings())

	router.GET("/", app.HomePage())
	router.GET("/login", app.LoginPage())
	router.POST("/login", app.Login())
	router.POST("/signup", app.Signup())
	router.POST("/logout", app.Logout())

	return router
}

// accountForRequest binds the injected session client to the request's
// session cookie. Returns nil when auth is unconfigured; a missing or
// invalid cookie yields an unauthenticated client, whose identity lookup
// the auth service answers with "no session".
func (a *App) accountForRequest(c *gin.Context) session.AccountAPI {
	if a.Sessions == nil {
		return nil
	}
	secret := a.sessionSecret(c)
	return a.Sessions.ForSession(secret)
}

func (a *App) sessionSecret(c *gin.Context) string {
	tok, err := c.Cookie(session.CookieName)
	if err != nil || tok == "" {
		return ""
	}
	secret, ok := session.ParseCookieToken(a.SigningKey, tok)
	if !ok {
		return ""
	}
	return secret
}
