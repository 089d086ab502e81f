package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/burnerlabs/gifbot-backend/internal/handlers"
	"github.com/burnerlabs/gifbot-backend/internal/services"
	"github.com/burnerlabs/gifbot-backend/internal/storage"
)

func newHomeApp(t *testing.T, store storage.Store, platformHandler http.HandlerFunc) *fiber.App {
	t.Helper()

	srv := httptest.NewServer(platformHandler)
	t.Cleanup(srv.Close)

	burnerSvc := services.NewBurnerService().WithBaseURL(srv.URL)

	app := fiber.New()
	handler := handlers.NewHomeHandler(store, burnerSvc)
	app.Get("/", handler.Home)
	app.Get("/robots.txt", handler.Robots)
	return app
}

type homeResponse struct {
	AllBurners []handlers.BurnerView `json:"allBurners"`
	GifBurners []handlers.BurnerView `json:"gifBurners"`
}

func TestHome(t *testing.T) {
	liveBurners := `[
		{"id": "B1", "name": "Main Line", "phoneNumber": "+15551234567"},
		{"id": "B2", "name": "Side Line", "phoneNumber": "+15559876543"}
	]`

	t.Run("no session shows the landing view", func(t *testing.T) {
		store := storage.NewMemoryStore()
		app := newHomeApp(t, store, func(w http.ResponseWriter, r *http.Request) {
			t.Error("platform API should not be called without a session")
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Equal(t, "/authorize", body["authorize"])
	})

	t.Run("session intersects live burners with local records", func(t *testing.T) {
		store := storage.NewMemoryStore()
		seedBurner(t, store, "B1", "T1")

		app := newHomeApp(t, store, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "Bearer T1", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(liveBurners))
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: "T1"})
		resp, err := app.Test(req)
		require.NoError(t, err)

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body homeResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

		require.Len(t, body.AllBurners, 2)
		require.Len(t, body.GifBurners, 1)
		require.Equal(t, "B1", body.GifBurners[0].ID)
		require.Equal(t, "(555) 123-4567", body.GifBurners[0].PhoneNumber)
	})

	t.Run("burner not stored locally is not gif-enabled", func(t *testing.T) {
		store := storage.NewMemoryStore()

		app := newHomeApp(t, store, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(liveBurners))
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: "T9"})
		resp, err := app.Test(req)
		require.NoError(t, err)

		var body homeResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body.AllBurners, 2)
		require.Empty(t, body.GifBurners)
	})

	t.Run("platform API failure surfaces as 400", func(t *testing.T) {
		store := storage.NewMemoryStore()

		app := newHomeApp(t, store, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: "expired"})
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestRobots(t *testing.T) {
	store := storage.NewMemoryStore()
	app := newHomeApp(t, store, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/robots.txt", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "User-agent: *\nDisallow: /", string(body))
}
