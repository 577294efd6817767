package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/config"
	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/domain"
)

func testSettings() func() config.Settings {
	return func() config.Settings {
		return config.Settings{DV: "streamer", APIKey: "secret"}
	}
}

func TestFetchPrizes(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/dvapi.php", r.URL.Path)
		gotQuery = map[string]string{
			"dv":     r.URL.Query().Get("dv"),
			"key":    r.URL.Query().Get("key"),
			"action": r.URL.Query().Get("action"),
		}
		w.Write([]byte(`{"awards":[{"id":1,"name":"Mug"},{"id":"2","name":"Shirt"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, testSettings())
	prizes, err := client.FetchPrizes(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "streamer", gotQuery["dv"])
	assert.Equal(t, "secret", gotQuery["key"])
	assert.Equal(t, "getawards", gotQuery["action"])

	// Numeric and string award ids both normalize to strings.
	require.Len(t, prizes, 2)
	assert.Equal(t, domain.Prize{ID: "1", Name: "Mug"}, prizes[0])
	assert.Equal(t, domain.Prize{ID: "2", Name: "Shirt"}, prizes[1])
}

func TestFetchPrizesEmptyCatalogIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"awards":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, testSettings())
	prizes, err := client.FetchPrizes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, prizes)
}

func TestFetchPrizesUpstreamErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"auth failure", `{"result":-101}`, domain.ErrCatalogAuth},
		{"bad parameters", `{"result":-100}`, domain.ErrCatalogBadParams},
		{"invalid action", `{"result":0}`, domain.ErrCatalogInvalidAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, testSettings())
			_, err := client.FetchPrizes(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFetchPrizesMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, testSettings())
	_, err := client.FetchPrizes(context.Background())
	assert.Error(t, err)
}

func TestFetchPrizesConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, testSettings())
	_, err := client.FetchPrizes(context.Background())
	assert.Error(t, err)
}
