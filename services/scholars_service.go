package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/storage-ops/ordertool/config"
	"github.com/storage-ops/ordertool/models"
)

// APIError represents a failed call against the order-management API.
// Transport failures and non-2xx statuses both end up here, carrying the
// original cause.
type APIError struct {
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// OrderAPI defines the fetch contract against the order-management service.
// The enrichment pipeline and the review API depend on this interface so
// tests can substitute a mock.
type OrderAPI interface {
	FetchItems(orderID int) ([]models.Item, error)
	FetchDropoffInfo(orderID int) (*models.DropoffInfo, error)
	FetchImages(orderID int) ([]models.OrderImage, error)
	FetchInternalNotes(orderID int) ([]models.InternalNote, error)
	Download(serverPath, destPath string) error
}

// ScholarsClient is the real OrderAPI implementation over HTTPS
type ScholarsClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewScholarsClient creates an order API client from the application config
func NewScholarsClient(cfg *config.Config) *ScholarsClient {
	return &ScholarsClient{
		baseURL: cfg.ScholarsBaseURL,
		apiKey:  cfg.ScholarsAPIKey,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

// newRequest builds a GET request with the bearer token and the
// browser-mimicking header set the upstream service expects.
func (c *ScholarsClient) newRequest(fullURL string) (*http.Request, error) {
	req, err := http.NewRequest(http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/139.0.0.0 Safari/537.36")
	req.Header.Set("Referer", "https://signup.storagescholars.com/")
	req.Header.Set("sec-ch-ua", `"Not;A=Brand";v="99", "Brave";v="139", "Chromium";v="139"`)
	req.Header.Set("sec-ch-ua-platform", `"Windows"`)
	req.Header.Set("sec-ch-ua-mobile", "?0")
	return req, nil
}

// getJSON is the single GET primitive every fetch shares: base URL + path,
// optional query parameters, timeout via the underlying client, JSON decode.
func (c *ScholarsClient) getJSON(path string, params url.Values, out interface{}) error {
	fullURL := c.baseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	req, err := c.newRequest(fullURL)
	if err != nil {
		return &APIError{Message: "failed to create request", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Message: "get request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{Message: fmt.Sprintf("got status %d from %s: %s", resp.StatusCode, path, string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Message: "failed to decode response", Err: err}
	}

	return nil
}

// FetchItems returns the line items for an order, aggregated by title.
// Duplicate titles sum their quantities and keep first-seen order.
func (c *ScholarsClient) FetchItems(orderID int) ([]models.Item, error) {
	var lines []models.Item
	if err := c.getJSON(fmt.Sprintf("/order/items/%d", orderID), nil, &lines); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("could not get items for order %d", orderID)
	}
	return aggregateItems(lines), nil
}

// aggregateItems merges duplicate item lines by title, summing quantities
func aggregateItems(lines []models.Item) []models.Item {
	index := make(map[string]int, len(lines))
	items := make([]models.Item, 0, len(lines))
	for _, line := range lines {
		if i, seen := index[line.ItemTitle]; seen {
			items[i].Quantity += line.Quantity
			continue
		}
		index[line.ItemTitle] = len(items)
		items = append(items, line)
	}
	return items
}

// FetchDropoffInfo returns the storage-unit assignment for an order.
// Both the unit name and the quadrant must be present for the result to be
// usable.
func (c *ScholarsClient) FetchDropoffInfo(orderID int) (*models.DropoffInfo, error) {
	params := url.Values{}
	params.Set("OrderID", fmt.Sprintf("%d", orderID))

	var info models.DropoffInfo
	if err := c.getJSON("/worklist/dropoff", params, &info); err != nil {
		return nil, err
	}
	if info.StorageUnitName == "" || info.Quadrant == "" {
		return nil, fmt.Errorf("could not get storage unit info for order %d", orderID)
	}
	return &info, nil
}

// FetchImages returns the image descriptors for an order.
// An empty descriptor list is an error; orders are expected to have photos.
func (c *ScholarsClient) FetchImages(orderID int) ([]models.OrderImage, error) {
	params := url.Values{}
	params.Set("OrderID", fmt.Sprintf("%d", orderID))

	var images []models.OrderImage
	if err := c.getJSON("/order/images", params, &images); err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("could not get images for order %d", orderID)
	}
	return images, nil
}

// FetchInternalNotes returns the internal notes for an order. Orders with no
// notes are normal; the result is simply empty.
func (c *ScholarsClient) FetchInternalNotes(orderID int) ([]models.InternalNote, error) {
	var notes []models.InternalNote
	if err := c.getJSON(fmt.Sprintf("/order/internalnotes/%d", orderID), nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// Download fetches the binary at a server-side path and writes it to
// destPath, creating the parent directory if needed.
func (c *ScholarsClient) Download(serverPath, destPath string) error {
	req, err := c.newRequest(c.baseURL + serverPath)
	if err != nil {
		return &APIError{Message: "failed to create request", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Message: "download failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Message: fmt.Sprintf("got status %d downloading %s", resp.StatusCode, serverPath)}
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("failed to create image directory: %w", err)
	}

	dest, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, resp.Body); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}

	return nil
}
