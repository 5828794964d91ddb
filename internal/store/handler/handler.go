package storehandler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/xw1nchester/storefront-backend/internal/apperror"
	jwtauth "github.com/xw1nchester/storefront-backend/internal/auth/jwt"
	"github.com/xw1nchester/storefront-backend/internal/handlers"
	"github.com/xw1nchester/storefront-backend/internal/store"
	"go.uber.org/zap"
)

const pageURL = "/api/stores/page/%d"

var (
	validate = validator.New()

	ErrInvalidID    = apperror.NewAppError("id should be positive integer")
	ErrInvalidPage  = apperror.NewAppError("page should be positive integer")
	ErrInvalidPoint = apperror.NewAppError("lng and lat query parameters should be numbers")
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockstorehandler
type Service interface {
	GetStores(ctx context.Context, page int) (*store.StoresPage, error)
	CreateStore(ctx context.Context, data store.Store) (*store.Store, error)
	GetStoreForEdit(ctx context.Context, storeID, userID int) (*store.Store, error)
	UpdateStore(ctx context.Context, storeID, userID int, data store.Store) (*store.Store, error)
	GetStoreBySlug(ctx context.Context, slug string) (*store.Store, error)
	GetStoresByTag(ctx context.Context, tag string) (*store.TagListing, error)
	SearchStores(ctx context.Context, text string) ([]store.Store, error)
	GetStoresNear(ctx context.Context, lng, lat float64) ([]store.NearbyStore, error)
	GetTopStores(ctx context.Context) ([]store.TopStore, error)
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
	router.Get("/stores", apperror.Middleware(h.getStoresHandler))
	router.Get("/stores/page/{page}", apperror.Middleware(h.getStoresHandler))
	router.Get("/stores/near", apperror.Middleware(h.getStoresNearHandler))
	router.Get("/store/{slug}", apperror.Middleware(h.getStoreBySlugHandler))

	router.Get("/tags", apperror.Middleware(h.getStoresByTagHandler))
	router.Get("/tags/{tag}", apperror.Middleware(h.getStoresByTagHandler))

	router.Get("/search", apperror.Middleware(h.searchStoresHandler))
	router.Get("/top", apperror.Middleware(h.getTopStoresHandler))

	router.Group(func(privateStoreRouter chi.Router) {
		privateStoreRouter.Use(h.authMiddleware)
		privateStoreRouter.Post("/stores", apperror.Middleware(h.createStoreHandler))
		privateStoreRouter.Get("/stores/{id}/edit", apperror.Middleware(h.getStoreForEditHandler))
		privateStoreRouter.Put("/stores/{id}", apperror.Middleware(h.updateStoreHandler))
	})
}

func parseID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		return 0, ErrInvalidID
	}
	return id, nil
}

func (h *handler) decodeStoreRequest(r *http.Request) (*StoreRequest, error) {
	var dto StoreRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return nil, apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return nil, apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	return &dto, nil
}

// @Tags		stores
// @Param		page	path		int	false	"Page number"
// @Success	200		{object}	store.StoresPage
// @Success	302
// @Failure	400,500	{object}	apperror.AppError
// @Router		/stores/page/{page} [get]
func (h *handler) getStoresHandler(w http.ResponseWriter, r *http.Request) error {
	page := 1
	if raw := chi.URLParam(r, "page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return ErrInvalidPage
		}
		page = parsed
	}

	storesPage, err := h.service.GetStores(r.Context(), page)
	if err != nil {
		var pageErr *store.PageOutOfRangeError
		if errors.As(err, &pageErr) {
			http.Redirect(w, r, fmt.Sprintf(pageURL, pageErr.Last), http.StatusFound)
			return nil
		}
		return err
	}

	render.JSON(w, r, storesPage)

	return nil
}

// @Tags		stores
// @Security	ApiKeyAuth
// @Param		request	body		StoreRequest	true	"request body"
// @Success	200		{object}	StoreResponse
// @Failure	400,401,500	{object}	apperror.AppError
// @Router		/stores [post]
func (h *handler) createStoreHandler(w http.ResponseWriter, r *http.Request) error {
	dto, err := h.decodeStoreRequest(r)
	if err != nil {
		return err
	}

	userID := r.Context().Value(jwtauth.UserIDContextKey{}).(int)

	createdStore, err := h.service.CreateStore(r.Context(), *dto.ToDomain(userID))
	if err != nil {
		return err
	}

	render.JSON(w, r, StoreResponse{Store: *createdStore})

	return nil
}

// @Tags		stores
// @Security	ApiKeyAuth
// @Param		id	path		int	true	"Store ID"
// @Success	200	{object}	StoreResponse
// @Failure	400,401,403,500	{object}	apperror.AppError
// @Router		/stores/{id}/edit [get]
func (h *handler) getStoreForEditHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := parseID(r)
	if err != nil {
		return err
	}

	userID := r.Context().Value(jwtauth.UserIDContextKey{}).(int)

	existingStore, err := h.service.GetStoreForEdit(r.Context(), id, userID)
	if err != nil {
		return err
	}

	render.JSON(w, r, StoreResponse{Store: *existingStore})

	return nil
}

// @Tags		stores
// @Security	ApiKeyAuth
// @Param		id		path		int				true	"Store ID"
// @Param		request	body		StoreRequest	true	"request body"
// @Success	200		{object}	StoreResponse
// @Failure	400,401,403,409,500	{object}	apperror.AppError
// @Router		/stores/{id} [put]
func (h *handler) updateStoreHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := parseID(r)
	if err != nil {
		return err
	}

	dto, err := h.decodeStoreRequest(r)
	if err != nil {
		return err
	}

	userID := r.Context().Value(jwtauth.UserIDContextKey{}).(int)

	updatedStore, err := h.service.UpdateStore(r.Context(), id, userID, *dto.ToDomain(userID))
	if err != nil {
		return err
	}

	render.JSON(w, r, StoreResponse{Store: *updatedStore})

	return nil
}

// @Tags		stores
// @Param		slug	path		string	true	"Store slug"
// @Success	200		{object}	StoreResponse
// @Failure	404,500	{object}	apperror.AppError
// @Router		/store/{slug} [get]
func (h *handler) getStoreBySlugHandler(w http.ResponseWriter, r *http.Request) error {
	existingStore, err := h.service.GetStoreBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		return err
	}

	render.JSON(w, r, StoreResponse{Store: *existingStore})

	return nil
}

// @Tags		tags
// @Param		tag	path		string	false	"Tag"
// @Success	200	{object}	store.TagListing
// @Failure	500	{object}	apperror.AppError
// @Router		/tags/{tag} [get]
func (h *handler) getStoresByTagHandler(w http.ResponseWriter, r *http.Request) error {
	listing, err := h.service.GetStoresByTag(r.Context(), chi.URLParam(r, "tag"))
	if err != nil {
		return err
	}

	render.JSON(w, r, listing)

	return nil
}

// @Tags		search
// @Param		q	query		string	false	"Search text"
// @Success	200	{object}	StoresResponse
// @Failure	500	{object}	apperror.AppError
// @Router		/search [get]
func (h *handler) searchStoresHandler(w http.ResponseWriter, r *http.Request) error {
	stores, err := h.service.SearchStores(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		return err
	}

	render.JSON(w, r, StoresResponse{Stores: stores})

	return nil
}

// @Tags		stores
// @Param		lng	query		number	true	"Longitude"
// @Param		lat	query		number	true	"Latitude"
// @Success	200	{object}	NearbyStoresResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/stores/near [get]
func (h *handler) getStoresNearHandler(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()

	lng, err := strconv.ParseFloat(query.Get("lng"), 64)
	if err != nil {
		return ErrInvalidPoint
	}

	lat, err := strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		return ErrInvalidPoint
	}

	stores, err := h.service.GetStoresNear(r.Context(), lng, lat)
	if err != nil {
		return err
	}

	render.JSON(w, r, NearbyStoresResponse{Stores: stores})

	return nil
}

// @Tags		stores
// @Success	200	{object}	TopStoresResponse
// @Failure	500	{object}	apperror.AppError
// @Router		/top [get]
func (h *handler) getTopStoresHandler(w http.ResponseWriter, r *http.Request) error {
	stores, err := h.service.GetTopStores(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, TopStoresResponse{Stores: stores})

	return nil
}
