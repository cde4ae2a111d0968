package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"storefront-service/internal/models"
)

// BackendClient talks to the remote commerce backend that owns persistent
// state. The storefront uses it for two things: fetching the catalog when
// no local fixture is configured, and syncing authenticated wishlists.
type BackendClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewBackendClient creates a client for the given base URL.
func NewBackendClient(baseURL string) *BackendClient {
	return &BackendClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type catalogPayload struct {
	Products   []models.Product  `json:"products"`
	Categories []models.Category `json:"categories"`
}

// FetchCatalog retrieves the full product catalog.
func (c *BackendClient) FetchCatalog(ctx context.Context) (*models.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog fetch returned status %d", resp.StatusCode)
	}

	var payload catalogPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	return &models.Catalog{Products: payload.Products, Categories: payload.Categories}, nil
}

type wishlistPayload struct {
	Items []models.WishlistItem `json:"items"`
}

// Load implements store.WishlistBackend against the remote backend.
func (c *BackendClient) Load(ctx context.Context, ownerID string) ([]models.WishlistItem, error) {
	url := fmt.Sprintf("%s/customers/%s/wishlist", c.baseURL, ownerID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wishlist: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return []models.WishlistItem{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wishlist fetch returned status %d", resp.StatusCode)
	}

	var payload wishlistPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode wishlist response: %w", err)
	}
	return payload.Items, nil
}

// Save implements store.WishlistBackend against the remote backend.
func (c *BackendClient) Save(ctx context.Context, ownerID string, items []models.WishlistItem) error {
	body, err := json.Marshal(wishlistPayload{Items: items})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/customers/%s/wishlist", c.baseURL, ownerID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to save wishlist: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("wishlist save returned status %d", resp.StatusCode)
	}
	return nil
}
