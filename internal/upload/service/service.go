package uploadservice

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/xw1nchester/storefront-backend/internal/apperror"
	"go.uber.org/zap"
)

var ErrNotImage = apperror.NewAppError("that filetype isn't allowed")

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockuploadservice
type ObjectStorage interface {
	PutObject(
		ctx context.Context,
		bucketName, objectName string,
		reader io.Reader,
		objectSize int64,
		opts minio.PutObjectOptions,
	) (minio.UploadInfo, error)
}

type service struct {
	storage ObjectStorage
	bucket  string
	logger  *zap.Logger
}

func New(storage ObjectStorage, bucket string, logger *zap.Logger) *service {
	return &service{
		storage: storage,
		bucket:  bucket,
		logger:  logger,
	}
}

// UploadPhoto stores an image under a random name and returns that name.
// The extension comes from the content type, e.g. image/png gives .png.
func (s *service) UploadPhoto(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error) {
	mediaType, subtype, ok := strings.Cut(strings.ToLower(strings.TrimSpace(contentType)), "/")
	if !ok || mediaType != "image" || subtype == "" {
		return "", ErrNotImage
	}

	subtype, _, _ = strings.Cut(subtype, ";")
	subtype, _, _ = strings.Cut(subtype, "+")

	fileName := fmt.Sprintf("%s.%s", uuid.NewString(), strings.TrimSpace(subtype))

	ui, err := s.storage.PutObject(
		ctx,
		s.bucket,
		fileName,
		reader,
		size,
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		s.logger.Error("error when uploading photo", zap.Error(err))
		return "", err
	}

	s.logger.Info("uploaded info",
		zap.String("bucket", ui.Bucket),
		zap.String("key", ui.Key),
		zap.String("etag", ui.ETag),
		zap.Int64("size", ui.Size),
	)

	return fileName, nil
}
