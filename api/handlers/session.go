package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"go-storefront/internal/models"
	"go-storefront/internal/session"
)

const (
	sessionCookie = "storefront_session"
	// Cookie lifetime in seconds; registry backends apply their own TTL.
	sessionMaxAge = 24 * 60 * 60

	cartKey = "cart"
)

// CartSession resolves the caller's cart from the session cookie, creating a
// new session on first contact, and saves the cart back once the request has
// run. Each session owns its own cart; requests never share one.
func CartSession(registry session.CartRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(sessionCookie, sid, sessionMaxAge, "/", "", false, true)
		}

		cart, err := registry.Get(c.Request.Context(), sid)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Session unavailable"})
			return
		}
		c.Set(cartKey, cart)

		c.Next()

		// Only write the cart back when this request mutated it. A product
		// delete sweeps the stored carts directly; saving an untouched
		// snapshot here would restore the swept line.
		if !cart.Dirty() {
			return
		}
		if err := registry.Save(c.Request.Context(), sid, cart); err != nil {
			log.Printf("Failed to save cart for session %s: %v", sid, err)
		}
	}
}

func currentCart(c *gin.Context) *models.Cart {
	return c.MustGet(cartKey).(*models.Cart)
}
