package uploadhandler

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/storefront-backend/internal/apperror"
	"github.com/xw1nchester/storefront-backend/internal/handlers"
	"go.uber.org/zap"
)

const maxPhotoSize = 10 << 20

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockuploadhandler
type Service interface {
	UploadPhoto(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error)
}

type PhotoResponse struct {
	Photo string `json:"photo"`
}

type handler struct {
	service        Service
	authMiddleware func(http.Handler) http.Handler
	logger         *zap.Logger
}

func New(
	service Service,
	authMiddleware func(http.Handler) http.Handler,
	logger *zap.Logger,
) handlers.Handler {
	return &handler{
		service:        service,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Group(func(privateRouter chi.Router) {
		privateRouter.Use(h.authMiddleware)

		privateRouter.Post("/upload", apperror.Middleware(h.uploadHandler))
	})
}

// @Tags		upload
// @Security	ApiKeyAuth
// @Accept		mpfd
// @Param		photo	formData	file	true	"Store photo"
// @Success	200		{object}	PhotoResponse
// @Failure	400,401,500	{object}	apperror.AppError
// @Router		/upload [post]
func (h *handler) uploadHandler(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoSize)

	file, header, err := r.FormFile("photo")
	if err != nil {
		return apperror.NewAppError(fmt.Sprintf("failed to retrieve photo: %s", err.Error()))
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")

	h.logger.Debug("received photo", zap.String("filename", header.Filename), zap.String("content_type", contentType))

	photo, err := h.service.UploadPhoto(r.Context(), file, header.Size, contentType)
	if err != nil {
		return err
	}

	render.JSON(w, r, PhotoResponse{Photo: photo})

	return nil
}
