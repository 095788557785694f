package services

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/storage-ops/ordertool/models"
)

func TestFetchAndStore(t *testing.T) {
	api := NewMockOrderAPI()
	api.Images[95003] = []models.OrderImage{
		{ImagePath: "/uploads/95003/front.jpg"},
		{ImagePath: "/uploads/95003/back.png"},
	}

	dir := t.TempDir()
	service := NewImageService(api, dir, nil, zap.NewNop())

	paths, err := service.FetchAndStore(95003)
	require.NoError(t, err)

	// Deterministic names: {order_id}_{sequence}.{ext}, sequence from 1 in
	// response order
	assert.Equal(t, []string{
		filepath.Join(dir, "95003_1.jpg"),
		filepath.Join(dir, "95003_2.png"),
	}, paths)

	for _, path := range paths {
		_, err := os.Stat(path)
		assert.NoError(t, err, "expected %s to exist", path)
	}
}

func TestFetchAndStore_NoImagesIsError(t *testing.T) {
	api := NewMockOrderAPI()
	service := NewImageService(api, t.TempDir(), nil, zap.NewNop())

	_, err := service.FetchAndStore(95003)
	assert.Error(t, err)
}

func TestFetchAndStore_MissingExtensionSurfaces(t *testing.T) {
	api := NewMockOrderAPI()
	api.Images[95003] = []models.OrderImage{{ImagePath: "/uploads/95003/front"}}

	service := NewImageService(api, t.TempDir(), nil, zap.NewNop())

	_, err := service.FetchAndStore(95003)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad image descriptor")
}

func TestFetchAndStore_ArchivesToS3(t *testing.T) {
	api := NewMockOrderAPI()
	api.Images[95003] = []models.OrderImage{{ImagePath: "/uploads/95003/front.jpg"}}

	archive := NewMockS3Service()
	service := NewImageService(api, t.TempDir(), archive, zap.NewNop())

	_, err := service.FetchAndStore(95003)
	require.NoError(t, err)
	assert.True(t, archive.FileExists("images/95003_1.jpg"))
}

func TestFetchAndStore_ArchiveFailureIsWarning(t *testing.T) {
	api := NewMockOrderAPI()
	api.Images[95003] = []models.OrderImage{{ImagePath: "/uploads/95003/front.jpg"}}

	archive := NewMockS3Service()
	archive.UploadErr = fmt.Errorf("bucket unavailable")

	core, logs := observer.New(zap.WarnLevel)
	service := NewImageService(api, t.TempDir(), archive, zap.New(core))

	paths, err := service.FetchAndStore(95003)
	require.NoError(t, err)
	assert.Len(t, paths, 1)
	assert.Equal(t, 1, logs.FilterMessage("Failed to archive image to S3").Len())
}
