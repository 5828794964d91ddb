package hearthandler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/storefront-backend/internal/apperror"
	jwtauth "github.com/xw1nchester/storefront-backend/internal/auth/jwt"
	"github.com/xw1nchester/storefront-backend/internal/handlers"
	"github.com/xw1nchester/storefront-backend/internal/store"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockhearthandler
type Service interface {
	ToggleHeart(ctx context.Context, userID, storeID int) ([]int, error)
	GetHeartedStores(ctx context.Context, userID int) ([]store.Store, error)
}

type HeartsResponse struct {
	Hearts []int `json:"hearts"`
}

type StoresResponse struct {
	Stores []store.Store `json:"stores"`
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
		privateRouter.Post("/stores/{id}/heart", apperror.Middleware(h.toggleHeartHandler))
		privateRouter.Get("/hearts", apperror.Middleware(h.getHeartedStoresHandler))
	})
}

// @Tags		hearts
// @Security	ApiKeyAuth
// @Param		id	path		int	true	"Store ID"
// @Success	200	{object}	HeartsResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/stores/{id}/heart [post]
func (h *handler) toggleHeartHandler(w http.ResponseWriter, r *http.Request) error {
	storeID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || storeID < 1 {
		return apperror.NewAppError("id should be positive integer")
	}

	userID := r.Context().Value(jwtauth.UserIDContextKey{}).(int)

	hearts, err := h.service.ToggleHeart(r.Context(), userID, storeID)
	if err != nil {
		return err
	}

	render.JSON(w, r, HeartsResponse{Hearts: hearts})

	return nil
}

// @Tags		hearts
// @Security	ApiKeyAuth
// @Success	200	{object}	StoresResponse
// @Failure	401,500	{object}	apperror.AppError
// @Router		/hearts [get]
func (h *handler) getHeartedStoresHandler(w http.ResponseWriter, r *http.Request) error {
	userID := r.Context().Value(jwtauth.UserIDContextKey{}).(int)

	stores, err := h.service.GetHeartedStores(r.Context(), userID)
	if err != nil {
		return err
	}

	render.JSON(w, r, StoresResponse{Stores: stores})

	return nil
}
