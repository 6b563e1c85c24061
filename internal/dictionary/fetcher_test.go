package dictionary_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanzikit/hanzikit/internal/dictionary"
)

func TestHTTPFetcher(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the body on success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"安":{"ān":["平静"]}}`))
		}))
		defer server.Close()

		body, err := dictionary.NewHTTPFetcher(server.URL).Fetch(ctx)
		require.NoError(t, err)
		assert.JSONEq(t, `{"安":{"ān":["平静"]}}`, string(body))
	})

	t.Run("retries server errors", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		body, err := dictionary.NewHTTPFetcher(server.URL).Fetch(ctx)
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(body))
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("does not retry client errors", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := dictionary.NewHTTPFetcher(server.URL).Fetch(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status code: 404")
		assert.Equal(t, int32(1), calls.Load())
	})
}
