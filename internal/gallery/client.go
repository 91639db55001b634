package gallery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pchrisoc/zymome/internal/model"
)

// galleryPath is the listing endpoint, relative to the server base URL
const galleryPath = "/api/gallery"

// requestIDHeader carries a per-fetch id for log correlation with the server
const requestIDHeader = "X-Request-ID"

// Client fetches gallery records from the photo server. The underlying HTTP
// client carries no timeout: a hung listing request keeps the view in its
// loading state until the caller cancels the context.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a gallery API client for the given server base URL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// BaseURL returns the server base the client resolves against
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchImages issues a single GET against the gallery listing endpoint and
// decodes the JSON array of records, preserving server order. A non-2xx
// response produces an error whose message the UI shows verbatim:
// "Failed to fetch images: 500 Internal Server Error". Transport and decode
// failures surface with their own messages, unprefixed.
func (c *Client) FetchImages(ctx context.Context) ([]model.ImageRecord, error) {
	requestID := uuid.NewString()
	url := c.baseURL + galleryPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(requestIDHeader, requestID)

	log.Printf("Fetching gallery from %s (request %s)", url, requestID)
	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("Gallery request %s failed: %v", requestID, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("Gallery request %s returned %s", requestID, resp.Status)
		return nil, fmt.Errorf("Failed to fetch images: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var records []model.ImageRecord
	if err := json.Unmarshal(body, &records); err != nil {
		log.Printf("Gallery request %s returned an unparsable body: %v", requestID, err)
		return nil, err
	}

	log.Printf("Gallery request %s: %d records in %v",
		requestID, len(records), time.Since(started).Round(time.Millisecond))
	return records, nil
}
