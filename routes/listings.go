package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aimanzahar/mealshare-web/listings"
)

// GetListings serves the live feed as a bare JSON array. Unlike the page,
// this route reports backend trouble: an unconfigured gateway or a failed
// query is a 500 with an error payload.
func (a *App) GetListings() gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := a.Listings.FetchAvailable(c.Request.Context())
		if err != nil {
			if errors.Is(err, listings.ErrUnavailable) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Missing Appwrite configuration on server."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load listings right now."})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
