package enrichment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescli/internal/config"
	apperrors "salescli/internal/errors"
)

func testClientConfig(baseURL string) config.EnrichmentConfig {
	return config.EnrichmentConfig{
		Enabled: true,
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
		RPS:     100,
		Burst:   10,
	}
}

func TestFetchCatalog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "0", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"products": [
				{"id": 101, "title": "Laptop Pro", "category": "laptops", "brand": "Acme", "rating": 4.5},
				{"id": 102, "title": "Mouse", "category": "peripherals", "brand": "Clicky", "rating": 3.9},
				{"id": 0, "title": "bogus"}
			],
			"total": 3
		}`))
	}))
	defer server.Close()

	client := NewClient(testClientConfig(server.URL), nil)
	catalog, err := client.FetchCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 2, "non-positive ids are dropped")

	assert.Equal(t, "laptops", catalog[101].Category)
	assert.Equal(t, "Clicky", catalog[102].Brand)
	assert.Equal(t, 3.9, catalog[102].Rating)
}

func TestFetchCatalogFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(testClientConfig(server.URL), nil)
			catalog, err := client.FetchCatalog(context.Background())
			require.Error(t, err)
			assert.Nil(t, catalog)

			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.ErrTypeCollaborator, appErr.Type)
		})
	}
}

func TestFetchCatalogUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // closed on purpose

	client := NewClient(testClientConfig(server.URL), nil)
	_, err := client.FetchCatalog(context.Background())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrTypeCollaborator, appErr.Type)
}

func TestFetchProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products/101":
			_, _ = w.Write([]byte(`{"id": 101, "title": "Laptop", "category": "laptops", "brand": "Acme", "rating": 4.5}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(testClientConfig(server.URL), nil)

	meta, ok, err := client.FetchProduct(context.Background(), 101)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Acme", meta.Brand)

	_, ok, err = client.FetchProduct(context.Background(), 999)
	require.NoError(t, err, "404 is a normal miss")
	assert.False(t, ok)
}

func TestBuildCatalog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products/1":
			_, _ = w.Write([]byte(`{"id": 1, "category": "a", "brand": "A", "rating": 1}`))
		case "/products/2":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(testClientConfig(server.URL), nil)
	catalog := client.BuildCatalog(context.Background(), []int{1, 2, 3, 0})

	require.Len(t, catalog, 1, "failures and misses are skipped")
	assert.Equal(t, "A", catalog[1].Brand)
}
