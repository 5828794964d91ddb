package uploadservice

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mockuploadservice "github.com/xw1nchester/storefront-backend/internal/upload/service/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const bucket = "store-photos"

func TestUploadPhoto(t *testing.T) {
	tests := []struct {
		name         string
		contentType  string
		mockBehavior func(storage *mockuploadservice.MockObjectStorage)
		expectedExt  string
		expectedErr  error
	}{
		{
			name:        "jpeg",
			contentType: "image/jpeg",
			mockBehavior: func(storage *mockuploadservice.MockObjectStorage) {
				storage.EXPECT().
					PutObject(gomock.Any(), bucket, gomock.Any(), gomock.Any(), int64(4), minio.PutObjectOptions{ContentType: "image/jpeg"}).
					Return(minio.UploadInfo{Bucket: bucket}, nil)
			},
			expectedExt: "jpeg",
		},
		{
			name:        "svg with suffix",
			contentType: "image/svg+xml",
			mockBehavior: func(storage *mockuploadservice.MockObjectStorage) {
				storage.EXPECT().PutObject(gomock.Any(), bucket, gomock.Any(), gomock.Any(), int64(4), gomock.Any()).
					Return(minio.UploadInfo{}, nil)
			},
			expectedExt: "svg",
		},
		{
			name:         "not an image",
			contentType:  "application/pdf",
			mockBehavior: func(storage *mockuploadservice.MockObjectStorage) {},
			expectedErr:  ErrNotImage,
		},
		{
			name:         "missing content type",
			contentType:  "",
			mockBehavior: func(storage *mockuploadservice.MockObjectStorage) {},
			expectedErr:  ErrNotImage,
		},
		{
			name:        "storage failure",
			contentType: "image/png",
			mockBehavior: func(storage *mockuploadservice.MockObjectStorage) {
				storage.EXPECT().PutObject(gomock.Any(), bucket, gomock.Any(), gomock.Any(), int64(4), gomock.Any()).
					Return(minio.UploadInfo{}, errors.New("connection refused"))
			},
			expectedErr: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			storage := mockuploadservice.NewMockObjectStorage(ctrl)
			tt.mockBehavior(storage)

			s := New(storage, bucket, zap.NewNop())

			name, err := s.UploadPhoto(context.Background(), bytes.NewBufferString("data"), 4, tt.contentType)

			if tt.expectedErr != nil {
				require.EqualError(t, err, tt.expectedErr.Error())
				assert.Empty(t, name)
				return
			}

			require.NoError(t, err)
			assert.Regexp(t, regexp.MustCompile(`^[0-9a-f-]{36}\.`+tt.expectedExt+`$`), name)
		})
	}
}
