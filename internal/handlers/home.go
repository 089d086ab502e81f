package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/burnerlabs/gifbot-backend/internal/services"
	"github.com/burnerlabs/gifbot-backend/internal/storage"
	"github.com/burnerlabs/gifbot-backend/internal/utils"
)

// BurnerView is one burner as rendered on the home page.
type BurnerView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

// HomeHandler renders the landing and authorized views
type HomeHandler struct {
	store         storage.Store
	burnerService *services.BurnerService
}

// NewHomeHandler creates a new home handler
func NewHomeHandler(store storage.Store, burnerService *services.BurnerService) *HomeHandler {
	return &HomeHandler{
		store:         store,
		burnerService: burnerService,
	}
}

// Home shows the landing view, or for an authenticated session the full
// live burner list plus the GIF-enabled subset (live burners that also
// have a local record). The live list is re-fetched on every load.
func (h *HomeHandler) Home(c *fiber.Ctx) error {
	token := c.Cookies(SessionCookieName)
	if token == "" {
		return c.JSON(fiber.Map{
			"message":   "Connect your Burner to get GIF replies",
			"authorize": "/authorize",
		})
	}

	local, err := h.store.GetBurnersByAccessToken(token)
	if err != nil {
		log.Printf("Error listing burners for session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load burners",
		})
	}

	live, err := h.burnerService.GetBurners(c.Context(), token, "")
	if err != nil {
		log.Printf("Error fetching live burner list: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to fetch burners from platform",
		})
	}

	localIDs := make(map[string]bool, len(local))
	for _, b := range local {
		localIDs[b.BurnerID] = true
	}

	allBurners := make([]BurnerView, 0, len(live))
	gifBurners := make([]BurnerView, 0, len(live))
	for _, b := range live {
		view := BurnerView{
			ID:          b.ID,
			Name:        b.Name,
			PhoneNumber: utils.FormatNationalNumber(b.PhoneNumber),
		}
		allBurners = append(allBurners, view)
		if localIDs[b.ID] {
			gifBurners = append(gifBurners, view)
		}
	}

	return c.JSON(fiber.Map{
		"allBurners": allBurners,
		"gifBurners": gifBurners,
	})
}

// Robots keeps crawlers away from the whole service.
func (h *HomeHandler) Robots(c *fiber.Ctx) error {
	c.Type("txt")
	return c.SendString("User-agent: *\nDisallow: /")
}
