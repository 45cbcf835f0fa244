package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aimanzahar/mealshare-web/listings"
	"github.com/aimanzahar/mealshare-web/models"
	"github.com/aimanzahar/mealshare-web/session"
)

// HomePage renders the landing page, or the dashboard when the session
// resolves to an authenticated user. The listing fetch and the identity
// lookup have no data dependency, so they run concurrently.
func (a *App) HomePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		listingsCh := make(chan []models.Listing, 1)
		go func() {
			items, err := a.Listings.FetchAvailable(ctx)
			if err != nil && !errors.Is(err, listings.ErrUnavailable) {
				// Fail open: the page degrades to an empty feed.
				a.Log.Warn("home listings fetch failed", zap.Error(err))
			}
			listingsCh <- items
		}()

		w := session.NewWatcher(a.accountForRequest(c), a.Log)
		w.Start(ctx)
		defer w.Close()

		snap := w.Wait(ctx)
		items := <-listingsCh

		loggedIn := snap.State == session.StateAuthenticated
		dashboard := loggedIn && c.Query("view") != "landing"

		userName := ""
		if snap.User != nil {
			userName = snap.User.Name
			if userName == "" {
				userName = snap.User.Email
			}
			if userName == "" {
				userName = "MealShare User"
			}
		}

		c.HTML(http.StatusOK, "home.html", gin.H{
			"LoggedIn":   loggedIn,
			"Dashboard":  dashboard,
			"UserName":   userName,
			"Listings":   items,
			"Live":       len(items),
			"Tally":      listings.TallyStatuses(items),
			"Impact":     impactCards(snap.User),
			"Features":   featureCards,
			"Roles":      roleJourneys,
			"Highlights": highlights,
			"FlowSteps":  flowSteps,
		})
	}
}
