package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/burnerlabs/gifbot-backend/internal/models"
	"github.com/burnerlabs/gifbot-backend/internal/services"
	"github.com/burnerlabs/gifbot-backend/internal/storage"
)

const (
	// SessionCookieName holds the access token; the token is the whole
	// session payload, there is no server-side session store.
	SessionCookieName = "session"

	stateCookieName = "oauth_state"

	sessionMaxAge = 48 * time.Hour
	stateMaxAge   = 10 * time.Minute
)

// OAuthHandler handles the 3-legged authorization flow
type OAuthHandler struct {
	store        storage.Store
	oauthService *services.OAuthService
}

// NewOAuthHandler creates a new OAuth handler
func NewOAuthHandler(store storage.Store, oauthService *services.OAuthService) *OAuthHandler {
	return &OAuthHandler{
		store:        store,
		oauthService: oauthService,
	}
}

// Authorize redirects the browser to the platform authorization URL.
// Re-entering here restarts the flow with a fresh state nonce.
func (h *OAuthHandler) Authorize(c *fiber.Ctx) error {
	state := uuid.NewString()

	c.Cookie(&fiber.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Expires:  time.Now().Add(stateMaxAge),
		HTTPOnly: true,
	})

	uri := h.oauthService.AuthCodeURL(state)
	log.Printf("Redirecting to: %s", uri)
	return c.Redirect(uri, fiber.StatusFound)
}

// Callback exchanges the authorization code for an access token, upserts
// one burner record per connected burner, then redirects home exactly
// once after the last upsert has completed.
func (h *OAuthHandler) Callback(c *fiber.Ctx) error {
	code := c.Query("code")
	state := c.Query("state")

	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing authorization code",
		})
	}
	if state == "" || state != c.Cookies(stateCookieName) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid state parameter",
		})
	}

	// State is single-use
	c.Cookie(&fiber.Cookie{
		Name:     stateCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	grant, err := h.oauthService.Exchange(c.Context(), code)
	if err != nil {
		log.Printf("Error exchanging authorization code: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Authorization failed",
		})
	}

	for _, cb := range grant.ConnectedBurners {
		log.Printf("Connected burner %s (%s)", cb.ID, cb.Name)

		_, err := h.store.UpsertBurner(&models.BurnerUpsert{
			BurnerID:    cb.ID,
			BurnerName:  cb.Name,
			AccessToken: grant.AccessToken,
		})
		if err != nil {
			log.Printf("Error upserting burner %s: %v", cb.ID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to save burner",
			})
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    grant.AccessToken,
		Expires:  time.Now().Add(sessionMaxAge),
		HTTPOnly: true,
	})

	return c.Redirect("/", fiber.StatusFound)
}
