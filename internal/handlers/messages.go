package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/burnerlabs/gifbot-backend/internal/services"
	"github.com/burnerlabs/gifbot-backend/internal/storage"
)

const (
	// inboundTextType marks the one webhook event type we act on.
	inboundTextType = "inboundText"

	// maxMessageWords gates the GIF lookup; longer texts get the
	// rejection reply instead.
	maxMessageWords = 4

	rejectionText = "Text a phrase, not a novel to get the best GIFs back!"
)

// WebhookPayload is the inbound event body from the Burner platform.
type WebhookPayload struct {
	Type       string `json:"type"`
	Payload    string `json:"payload"`
	BurnerID   string `json:"burnerId"`
	FromNumber string `json:"fromNumber"`
}

// MessageHandler handles inbound message webhooks
type MessageHandler struct {
	store         storage.Store
	burnerService *services.BurnerService
	giphyService  *services.GiphyService
}

// NewMessageHandler creates a new message webhook handler
func NewMessageHandler(store storage.Store, burnerService *services.BurnerService, giphyService *services.GiphyService) *MessageHandler {
	return &MessageHandler{
		store:         store,
		burnerService: burnerService,
		giphyService:  giphyService,
	}
}

// HandleWebhook processes an inbound message event: short texts get a
// random GIF reply matching the text, long ones get a canned rejection.
// Platform retries of non-text events are acknowledged without action.
func (h *MessageHandler) HandleWebhook(c *fiber.Ctx) error {
	var payload WebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing webhook: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid webhook payload",
		})
	}

	if payload.Type != inboundTextType {
		return c.SendStatus(fiber.StatusOK)
	}

	if payload.BurnerID == "" || payload.FromNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing burnerId or fromNumber",
		})
	}

	log.Printf("📱 Inbound text for burner %s: %s", payload.BurnerID, payload.Payload)

	burner, err := h.store.GetBurnerByBurnerID(payload.BurnerID)
	if err != nil {
		if errors.Is(err, storage.ErrBurnerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Burner not found",
			})
		}
		log.Printf("Error looking up burner %s: %v", payload.BurnerID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to look up burner",
		})
	}

	// Ignore messages that are too long - 4 words max
	if len(strings.Fields(payload.Payload)) > maxMessageWords {
		msg := &services.MessageRequest{
			BurnerID: burner.BurnerID,
			ToNumber: payload.FromNumber,
			Text:     rejectionText,
		}
		// Send outcome never changes the webhook response; the
		// platform would only retry and double-send on failure.
		if err := h.burnerService.SendMessage(c.Context(), burner.AccessToken, msg); err != nil {
			log.Printf("Error sending rejection reply: %v", err)
		}
		return c.SendStatus(fiber.StatusOK)
	}

	imageURL, err := h.giphyService.RandomGIF(c.Context(), payload.Payload)
	if err != nil {
		log.Printf("Error fetching gif for %q: %v", payload.Payload, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to fetch gif",
		})
	}

	msg := &services.MessageRequest{
		BurnerID: burner.BurnerID,
		ToNumber: payload.FromNumber,
		Text:     "",
		MediaURL: imageURL,
	}
	if err := h.burnerService.SendMessage(c.Context(), burner.AccessToken, msg); err != nil {
		log.Printf("Error sending gif reply: %v", err)
	}

	return c.SendStatus(fiber.StatusOK)
}
