package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/burnerlabs/gifbot-backend/internal/services"
)

func TestGiphyService_RandomGIF(t *testing.T) {
	t.Run("returns the image url for a tag", func(t *testing.T) {
		var gotKey, gotTag string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1/gifs/random", r.URL.Path)
			gotKey = r.URL.Query().Get("api_key")
			gotTag = r.URL.Query().Get("tag")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data":{"image_url":"http://media.giphy.com/cat.gif"}}`))
		}))
		defer srv.Close()

		giphy := services.NewGiphyService("test-key").WithBaseURL(srv.URL)

		url, err := giphy.RandomGIF(context.Background(), "cat")
		require.NoError(t, err)
		require.Equal(t, "http://media.giphy.com/cat.gif", url)
		require.Equal(t, "test-key", gotKey)
		require.Equal(t, "cat", gotTag)
	})

	t.Run("non-200 response is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		giphy := services.NewGiphyService("bad-key").WithBaseURL(srv.URL)

		_, err := giphy.RandomGIF(context.Background(), "cat")
		require.Error(t, err)
	})

	t.Run("unreachable provider is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		giphy := services.NewGiphyService("test-key").WithBaseURL(srv.URL)

		_, err := giphy.RandomGIF(context.Background(), "cat")
		require.Error(t, err)
	})
}
