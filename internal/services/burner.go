package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

const burnerAPIBaseURL = "http://api.burnerapp.com"

// PlatformBurner is one burner as the platform API reports it.
type PlatformBurner struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

// MessageRequest is the POST /v1/messages payload. Either Text or
// MediaURL carries the content; both are addressed by burner and number.
type MessageRequest struct {
	BurnerID string `json:"burnerId"`
	ToNumber string `json:"toNumber"`
	Text     string `json:"text"`
	MediaURL string `json:"mediaUrl,omitempty"`
}

// BurnerService calls the Burner platform REST API with a caller-supplied
// access token per request, since tokens differ per connected burner.
type BurnerService struct {
	client  *http.Client
	baseURL string
}

// NewBurnerService creates a new platform API client
func NewBurnerService() *BurnerService {
	return &BurnerService{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: burnerAPIBaseURL,
	}
}

// WithBaseURL points the client at a different API host (used in tests).
func (b *BurnerService) WithBaseURL(baseURL string) *BurnerService {
	b.baseURL = baseURL
	return b
}

// GetBurners fetches the live burner list for the token. A non-empty
// burnerID narrows the result to that single burner.
func (b *BurnerService) GetBurners(ctx context.Context, accessToken, burnerID string) ([]PlatformBurner, error) {
	endpoint := b.baseURL + "/v1/burners"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build burners request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	if burnerID != "" {
		q := req.URL.Query()
		q.Set("burnerId", burnerID)
		req.URL.RawQuery = q.Encode()
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch burners: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("burner API returned status %d", resp.StatusCode)
	}

	var burners []PlatformBurner
	if err := json.NewDecoder(resp.Body).Decode(&burners); err != nil {
		return nil, fmt.Errorf("failed to decode burners response: %w", err)
	}

	return burners, nil
}

// SendMessage posts a text or media message through the platform.
func (b *BurnerService) SendMessage(ctx context.Context, accessToken string, msg *MessageRequest) error {
	endpoint := b.baseURL + "/v1/messages"

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build message request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("burner API returned status %d", resp.StatusCode)
	}

	log.Printf("✅ Message sent to %s via burner %s", msg.ToNumber, msg.BurnerID)
	return nil
}
