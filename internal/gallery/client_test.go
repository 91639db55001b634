package gallery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchImages(t *testing.T) {
	payload := `[
		{"id":"a","src":"/images/a.jpg","alt":"First","title":"Alpha","createdTime":"2024-01-01T00:00:00Z","takenDate":"2023-12-25T10:00:00Z"},
		{"id":"b","src":"/images/b.jpg","alt":"","title":"Beta","createdTime":"2024-01-02T00:00:00Z","takenDate":""},
		{"id":"c","src":"/images/c.jpg","alt":"Third","title":"","createdTime":"","takenDate":""}
	]`

	var gotPath, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	records, err := client.FetchImages(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/api/gallery", gotPath)
	assert.NotEmpty(t, gotRequestID)

	require.Len(t, records, 3)
	// Server order is preserved
	assert.Equal(t, "a", records[0].ID)
	assert.Equal(t, "b", records[1].ID)
	assert.Equal(t, "c", records[2].ID)
	assert.Equal(t, "Alpha", records[0].Title)
	assert.Equal(t, "/images/b.jpg", records[1].Src)
	assert.Equal(t, "2023-12-25T10:00:00Z", records[0].TakenDate)
}

func TestClient_FetchImagesEmptyArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	records, err := client.FetchImages(context.Background())

	// An empty gallery is a valid result, not an error
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestClient_FetchImagesMissingFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"x","src":"/x.jpg"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	records, err := client.FetchImages(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "x", records[0].ID)
	assert.Empty(t, records[0].Alt)
	assert.Empty(t, records[0].Title)
	assert.Empty(t, records[0].CreatedTime)
	assert.Empty(t, records[0].TakenDate)
}

func TestClient_FetchImagesServerError(t *testing.T) {
	tests := []struct {
		status   int
		expected string
	}{
		{http.StatusInternalServerError, "Failed to fetch images: 500 Internal Server Error"},
		{http.StatusNotFound, "Failed to fetch images: 404 Not Found"},
		{http.StatusBadGateway, "Failed to fetch images: 502 Bad Gateway"},
	}

	for _, tc := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))

		client := NewClient(server.URL)
		_, err := client.FetchImages(context.Background())

		require.Error(t, err)
		assert.Equal(t, tc.expected, err.Error())
		server.Close()
	}
}

func TestClient_FetchImagesTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewClient(server.URL)
	_, err := client.FetchImages(context.Background())

	require.Error(t, err)
	// Transport failures surface with their own message, no gallery prefix
	assert.NotContains(t, err.Error(), "Failed to fetch images")
}

func TestClient_FetchImagesMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchImages(context.Background())

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "Failed to fetch images")
}

func TestClient_FetchImagesContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL)
	_, err := client.FetchImages(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_TrimsTrailingSlash(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL + "/")
	_, err := client.FetchImages(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/api/gallery", gotPath)
	assert.Equal(t, server.URL, client.BaseURL())
}
