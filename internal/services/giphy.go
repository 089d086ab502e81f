package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const giphyBaseURL = "http://api.giphy.com"

// GiphyService fetches random GIFs from the Giphy API.
type GiphyService struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewGiphyService creates a new GIF lookup client
func NewGiphyService(apiKey string) *GiphyService {
	return &GiphyService{
		client:  &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: giphyBaseURL,
	}
}

// WithBaseURL points the client at a different API host (used in tests).
func (g *GiphyService) WithBaseURL(baseURL string) *GiphyService {
	g.baseURL = baseURL
	return g
}

// RandomGIF returns the image URL of a random GIF matching the tag.
func (g *GiphyService) RandomGIF(ctx context.Context, tag string) (string, error) {
	endpoint := fmt.Sprintf("%s/v1/gifs/random?api_key=%s&tag=%s",
		g.baseURL, url.QueryEscape(g.apiKey), url.QueryEscape(tag))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build giphy request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch gif: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("giphy API returned status %d", resp.StatusCode)
	}

	var gif struct {
		Data struct {
			ImageURL string `json:"image_url"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&gif); err != nil {
		return "", fmt.Errorf("failed to decode giphy response: %w", err)
	}

	return gif.Data.ImageURL, nil
}
