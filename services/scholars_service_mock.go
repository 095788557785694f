package services

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/storage-ops/ordertool/models"
)

// MockOrderAPI is a hand-written OrderAPI implementation for testing.
// Responses are seeded per order id; unseeded lookups fail the way the real
// client does.
type MockOrderAPI struct {
	Items   map[int][]models.Item
	Dropoff map[int]*models.DropoffInfo
	Images  map[int][]models.OrderImage
	Notes   map[int][]models.InternalNote

	// Error injection, applied before the seeded data is consulted
	ItemsErr    error
	DropoffErr  error
	ImagesErr   error
	NotesErr    error
	DownloadErr error

	downloads []string
	mu        sync.Mutex
}

// NewMockOrderAPI creates an empty mock
func NewMockOrderAPI() *MockOrderAPI {
	return &MockOrderAPI{
		Items:   make(map[int][]models.Item),
		Dropoff: make(map[int]*models.DropoffInfo),
		Images:  make(map[int][]models.OrderImage),
		Notes:   make(map[int][]models.InternalNote),
	}
}

// FetchItems returns the seeded items, aggregated like the real client
func (m *MockOrderAPI) FetchItems(orderID int) ([]models.Item, error) {
	if m.ItemsErr != nil {
		return nil, m.ItemsErr
	}
	lines := m.Items[orderID]
	if len(lines) == 0 {
		return nil, fmt.Errorf("could not get items for order %d", orderID)
	}
	return aggregateItems(lines), nil
}

// FetchDropoffInfo returns the seeded storage-unit assignment
func (m *MockOrderAPI) FetchDropoffInfo(orderID int) (*models.DropoffInfo, error) {
	if m.DropoffErr != nil {
		return nil, m.DropoffErr
	}
	info := m.Dropoff[orderID]
	if info == nil || info.StorageUnitName == "" || info.Quadrant == "" {
		return nil, fmt.Errorf("could not get storage unit info for order %d", orderID)
	}
	return info, nil
}

// FetchImages returns the seeded image descriptors
func (m *MockOrderAPI) FetchImages(orderID int) ([]models.OrderImage, error) {
	if m.ImagesErr != nil {
		return nil, m.ImagesErr
	}
	images := m.Images[orderID]
	if len(images) == 0 {
		return nil, fmt.Errorf("could not get images for order %d", orderID)
	}
	return images, nil
}

// FetchInternalNotes returns the seeded notes; none seeded means none exist
func (m *MockOrderAPI) FetchInternalNotes(orderID int) ([]models.InternalNote, error) {
	if m.NotesErr != nil {
		return nil, m.NotesErr
	}
	return m.Notes[orderID], nil
}

// Download records the request and writes a placeholder file
func (m *MockOrderAPI) Download(serverPath, destPath string) error {
	if m.DownloadErr != nil {
		return m.DownloadErr
	}

	m.mu.Lock()
	m.downloads = append(m.downloads, serverPath)
	m.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(destPath, []byte("mock image"), 0644)
}

// DownloadedPaths returns the server paths downloaded so far (for assertions)
func (m *MockOrderAPI) DownloadedPaths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	paths := make([]string, len(m.downloads))
	copy(paths, m.downloads)
	return paths
}
