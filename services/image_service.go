package services

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/storage-ops/ordertool/utils"
)

// ImageService downloads order images to the local image store and
// optionally archives them to S3
type ImageService struct {
	api     OrderAPI
	dir     string
	archive S3Interface // nil disables archival
	logger  *zap.Logger
}

// NewImageService creates an image service. Pass a nil archive to keep
// images local only.
func NewImageService(api OrderAPI, dir string, archive S3Interface, logger *zap.Logger) *ImageService {
	return &ImageService{
		api:     api,
		dir:     dir,
		archive: archive,
		logger:  logger,
	}
}

// FetchAndStore downloads every image of an order into the image store under
// deterministic names ({orderID}_{seq}.{ext}, seq starting at 1 in response
// order) and returns the local paths. A descriptor without a file extension
// is a malformed upstream URL and surfaces as an error.
func (s *ImageService) FetchAndStore(orderID int) ([]string, error) {
	images, err := s.api.FetchImages(orderID)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(images))
	for i, image := range images {
		ext, err := utils.ParseFileType(image.ImagePath)
		if err != nil {
			return nil, fmt.Errorf("bad image descriptor for order %d: %w", orderID, err)
		}

		name := fmt.Sprintf("%d_%d.%s", orderID, i+1, ext)
		dest := filepath.Join(s.dir, name)
		if err := s.api.Download(image.ImagePath, dest); err != nil {
			return nil, fmt.Errorf("failed to download image %d for order %d: %w", i+1, orderID, err)
		}
		paths = append(paths, dest)

		if s.archive != nil {
			if err := s.archive.UploadFile(dest, "images/"+name); err != nil {
				s.logger.Warn("Failed to archive image to S3",
					zap.Int("order_id", orderID),
					zap.String("file", name),
					zap.Error(err))
			}
		}
	}

	return paths, nil
}
