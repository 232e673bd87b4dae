package upload

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"restaurant-directory/domain"
	"restaurant-directory/internal/utils/storage"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var unsafeKeyChars = regexp.MustCompile(`[^a-z0-9]`)

type (
	UploadService interface {
		UploadMenuImage(ctx context.Context, req domain.UploadImageRequest) (domain.UploadImageResponse, error)
	}

	uploadService struct {
		s3     storage.AwsS3
		logger *zap.SugaredLogger
	}
)

func NewUploadService(s3 storage.AwsS3, logger *zap.SugaredLogger) UploadService {
	return &uploadService{
		s3:     s3,
		logger: logger,
	}
}

func (s *uploadService) UploadMenuImage(ctx context.Context, req domain.UploadImageRequest) (domain.UploadImageResponse, error) {
	if req.File == nil || strings.TrimSpace(req.RestaurantName) == "" || strings.TrimSpace(req.ItemName) == "" {
		return domain.UploadImageResponse{}, domain.ErrMissingUploadFields
	}

	file, err := req.File.Open()
	if err != nil {
		return domain.UploadImageResponse{}, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return domain.UploadImageResponse{}, fmt.Errorf("detect content type: %w", err)
	}
	if !mimetype.EqualsAny(mtype.String(), storage.AllowImage...) {
		return domain.UploadImageResponse{}, fmt.Errorf("%w: %s", domain.ErrInvalidImageFormat, mtype.String())
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return domain.UploadImageResponse{}, fmt.Errorf("rewind upload: %w", err)
	}

	key := BuildObjectKey(req.RestaurantName, req.ItemName, req.File.Filename)
	objectKey, err := s.s3.UploadFile(ctx, key, file, mtype.String())
	if err != nil {
		return domain.UploadImageResponse{}, err
	}

	s.logger.Infow("menu image uploaded", "key", objectKey, "content_type", mtype.String(), "size", req.File.Size)
	return domain.UploadImageResponse{
		FileURL: s.s3.GetPublicLinkKey(objectKey),
		Key:     objectKey,
	}, nil
}

// BuildObjectKey returns "<restaurant>/<item>-<uuid><ext>", keeping the extension of filename.
func BuildObjectKey(restaurantName, itemName, filename string) string {
	return fmt.Sprintf("%s/%s-%s%s",
		SanitizeName(restaurantName),
		SanitizeName(itemName),
		uuid.NewString(),
		filepath.Ext(filename),
	)
}

// SanitizeName lowercases name and replaces every character outside [a-z0-9] with '-'.
func SanitizeName(name string) string {
	return unsafeKeyChars.ReplaceAllString(strings.ToLower(name), "-")
}
