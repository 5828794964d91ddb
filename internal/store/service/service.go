package storeservice

import (
	"context"
	"errors"
	"strings"

	"github.com/xw1nchester/storefront-backend/internal/apperror"
	"github.com/xw1nchester/storefront-backend/internal/store"
	storedb "github.com/xw1nchester/storefront-backend/internal/store/db"
	"github.com/xw1nchester/storefront-backend/internal/store/geo"
	"github.com/xw1nchester/storefront-backend/internal/store/ranking"
	"github.com/xw1nchester/storefront-backend/internal/store/slug"
	"github.com/xw1nchester/storefront-backend/pkg/transactor"
	"github.com/xw1nchester/storefront-backend/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxSlugAttempts bounds the retries after a concurrent write took the slug.
const maxSlugAttempts = 5

var (
	ErrNameRequired       = apperror.NewAppError("field name is a required field")
	ErrNameWithoutSlug    = apperror.NewAppError("store name must contain at least one letter or digit")
	ErrAddressRequired    = apperror.NewAppError("you must supply an address")
	ErrAuthorRequired     = apperror.NewAppError("you must supply an author")
	ErrInvalidCoordinates = apperror.NewAppError("you must supply valid coordinates")
	ErrSlugConflict       = apperror.ErrConflict
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockstoreservice
type Repository interface {
	GetStoreByID(ctx context.Context, id int) (*store.Store, error)
	LockStoreByID(ctx context.Context, id int) (*store.Store, error)
	GetStoreBySlug(ctx context.Context, slug string) (*store.Store, error)
	CheckStoreExists(ctx context.Context, id int) error
	CountSlugs(ctx context.Context, pattern string, excludeID int) (int, error)
	CreateStore(ctx context.Context, data store.Store) (*store.Store, error)
	UpdateStore(ctx context.Context, data store.Store) (*store.Store, error)
	GetStores(ctx context.Context, limit, offset int) ([]store.Store, error)
	CountStores(ctx context.Context) (int, error)
	GetStoresByIDs(ctx context.Context, ids []int) ([]store.Store, error)
	GetStoresByTag(ctx context.Context, tag string) ([]store.Store, error)
	GetTagLists(ctx context.Context) ([][]string, error)
	SearchStores(ctx context.Context, text string, limit int) ([]store.Store, error)
	GetStoresInBox(ctx context.Context, box geo.Box) ([]store.Store, error)
	GetStoresWithMinReviews(ctx context.Context, minReviews int) ([]store.Store, error)
}

type service struct {
	repository Repository
	txManager  transactor.Manager
	logger     *zap.Logger
}

func New(repository Repository, txManager transactor.Manager, logger *zap.Logger) *service {
	return &service{
		repository: repository,
		txManager:  txManager,
		logger:     logger,
	}
}

func normalizeStoreData(data store.Store) store.Store {
	data.Name = strings.TrimSpace(data.Name)
	data.Description = strings.TrimSpace(data.Description)
	data.Location.Type = store.PointType
	data.Location.Address = strings.TrimSpace(data.Location.Address)
	data.Tags = utils.CleanStrings(data.Tags)
	if data.Photo != nil {
		photo := strings.TrimSpace(*data.Photo)
		data.Photo = &photo
	}
	return data
}

// resolvePhoto applies the photo of an input to current: nil keeps current,
// an empty string clears it.
func resolvePhoto(input, current *string) *string {
	switch {
	case input == nil:
		return current
	case *input == "":
		return nil
	default:
		return input
	}
}

func validateStoreData(data store.Store) error {
	if data.Name == "" {
		return ErrNameRequired
	}

	if slug.Make(data.Name) == "" {
		return ErrNameWithoutSlug
	}

	if data.Location.Address == "" {
		return ErrAddressRequired
	}

	if err := data.Location.Point().Validate(); err != nil {
		return ErrInvalidCoordinates
	}

	return nil
}

// resolveSlug derives the slug for name from the current count of colliding
// slugs. Slugs already rejected by the store during this call are skipped.
func (s *service) resolveSlug(ctx context.Context, name string, excludeID int, rejected map[string]bool) (string, error) {
	base := slug.Make(name)

	count, err := s.repository.CountSlugs(ctx, slug.Pattern(base), excludeID)
	if err != nil {
		s.logger.Error("unexpected error when counting store slugs", zap.Error(err))
		return "", err
	}

	candidate := slug.Next(base, count)
	n := count + 1
	for rejected[candidate] {
		n++
		candidate = slug.WithSuffix(base, n)
	}

	return candidate, nil
}

// withSlugRetry runs fn until it stops failing with storedb.ErrSlugTaken.
// fn receives the slugs rejected so far and returns the slug it tried.
func (s *service) withSlugRetry(fn func(rejected map[string]bool) (string, error)) error {
	rejected := make(map[string]bool)

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		tried, err := fn(rejected)
		if !errors.Is(err, storedb.ErrSlugTaken) {
			return err
		}

		rejected[tried] = true

		s.logger.Warn(
			"store slug taken by a concurrent write, retrying",
			zap.String("slug", tried),
			zap.Int("attempt", attempt),
		)
	}

	return ErrSlugConflict
}

func (s *service) CreateStore(ctx context.Context, data store.Store) (*store.Store, error) {
	data = normalizeStoreData(data)

	if data.AuthorID == 0 {
		return nil, ErrAuthorRequired
	}

	if err := validateStoreData(data); err != nil {
		return nil, err
	}

	data.Photo = resolvePhoto(data.Photo, nil)

	var createdStore *store.Store
	err := s.withSlugRetry(func(rejected map[string]bool) (string, error) {
		storeSlug, err := s.resolveSlug(ctx, data.Name, 0, rejected)
		if err != nil {
			return "", err
		}

		data.Slug = storeSlug

		createdStore, err = s.repository.CreateStore(ctx, data)
		switch {
		case errors.Is(err, storedb.ErrAuthorNotFound):
			return storeSlug, apperror.ErrUnauthorized
		case err != nil && !errors.Is(err, storedb.ErrSlugTaken):
			s.logger.Error("unexpected error when creating store", zap.Error(err))
		}
		return storeSlug, err
	})
	if err != nil {
		return nil, err
	}

	return createdStore, nil
}

func confirmOwner(s *store.Store, userID int) error {
	if s.AuthorID != userID {
		return apperror.ErrForbidden
	}
	return nil
}

// GetStoreForEdit answers unknown and foreign stores with the same
// ErrForbidden.
func (s *service) GetStoreForEdit(ctx context.Context, storeID, userID int) (*store.Store, error) {
	existingStore, err := s.repository.GetStoreByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, storedb.ErrStoreNotFound) {
			return nil, apperror.ErrForbidden
		}

		s.logger.Error("unexpected error when fetching store by id", zap.Error(err))

		return nil, err
	}

	if err := confirmOwner(existingStore, userID); err != nil {
		return nil, err
	}

	return existingStore, nil
}

// UpdateStore replaces the mutable fields of a store owned by userID. The
// slug is recomputed only when the name changed. A nil photo keeps the
// current one, an empty photo removes it.
func (s *service) UpdateStore(ctx context.Context, storeID, userID int, data store.Store) (*store.Store, error) {
	data = normalizeStoreData(data)

	if err := validateStoreData(data); err != nil {
		return nil, err
	}

	inputPhoto := data.Photo

	var updatedStore *store.Store
	err := s.withSlugRetry(func(rejected map[string]bool) (string, error) {
		var tried string
		err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
			existingStore, err := s.repository.LockStoreByID(ctx, storeID)
			if err != nil {
				if errors.Is(err, storedb.ErrStoreNotFound) {
					return apperror.ErrForbidden
				}

				s.logger.Error("unexpected error when locking store", zap.Error(err))

				return err
			}

			if err := confirmOwner(existingStore, userID); err != nil {
				return err
			}

			data.ID = existingStore.ID
			data.AuthorID = existingStore.AuthorID
			data.Slug = existingStore.Slug

			data.Photo = resolvePhoto(inputPhoto, existingStore.Photo)

			if data.Name != existingStore.Name {
				storeSlug, err := s.resolveSlug(ctx, data.Name, existingStore.ID, rejected)
				if err != nil {
					return err
				}

				data.Slug = storeSlug
			}

			tried = data.Slug

			updatedStore, err = s.repository.UpdateStore(ctx, data)
			if err != nil && !errors.Is(err, storedb.ErrSlugTaken) {
				s.logger.Error("unexpected error when updating store", zap.Error(err))
			}
			return err
		})
		return tried, err
	})
	if err != nil {
		return nil, err
	}

	return updatedStore, nil
}

func (s *service) GetStoreBySlug(ctx context.Context, storeSlug string) (*store.Store, error) {
	existingStore, err := s.repository.GetStoreBySlug(ctx, storeSlug)
	if err != nil {
		if errors.Is(err, storedb.ErrStoreNotFound) {
			return nil, apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when fetching store by slug", zap.Error(err))

		return nil, err
	}

	return existingStore, nil
}

func (s *service) CheckStoreExists(ctx context.Context, id int) error {
	err := s.repository.CheckStoreExists(ctx, id)
	if err != nil {
		if errors.Is(err, storedb.ErrStoreNotFound) {
			return apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when check store exists by id", zap.Error(err))
	}

	return err
}

func (s *service) GetStoresByIDs(ctx context.Context, ids []int) ([]store.Store, error) {
	ids = utils.RemoveDuplicates(ids)
	if len(ids) == 0 {
		return []store.Store{}, nil
	}

	stores, err := s.repository.GetStoresByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("unexpected error when fetching stores by ids", zap.Error(err))
		return nil, err
	}

	return stores, nil
}

// GetStores returns one page of stores, newest first. Asking for a page past
// the last one yields *store.PageOutOfRangeError.
func (s *service) GetStores(ctx context.Context, page int) (*store.StoresPage, error) {
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * store.PageSize

	var (
		stores []store.Store
		count  int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stores, err = s.repository.GetStores(gctx, store.PageSize, offset)
		return err
	})
	g.Go(func() error {
		var err error
		count, err = s.repository.CountStores(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("unexpected error when fetching stores page", zap.Error(err))
		return nil, err
	}

	pages := (count + store.PageSize - 1) / store.PageSize

	if len(stores) == 0 && offset > 0 {
		return nil, &store.PageOutOfRangeError{Requested: page, Last: max(pages, 1)}
	}

	return &store.StoresPage{
		Stores: stores,
		Page:   page,
		Pages:  pages,
		Count:  count,
	}, nil
}

func (s *service) GetTagsList(ctx context.Context) ([]store.TagCount, error) {
	tagLists, err := s.repository.GetTagLists(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching store tags", zap.Error(err))
		return nil, err
	}

	return ranking.CountTags(ranking.Flatten(tagLists)), nil
}

// GetStoresByTag lists stores tagged with tag (any tag when empty) together
// with the counts of every tag in use.
func (s *service) GetStoresByTag(ctx context.Context, tag string) (*store.TagListing, error) {
	tag = strings.TrimSpace(tag)

	var (
		tags   []store.TagCount
		stores []store.Store
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tags, err = s.GetTagsList(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stores, err = s.repository.GetStoresByTag(gctx, tag)
		if err != nil {
			s.logger.Error("unexpected error when fetching stores by tag", zap.Error(err))
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &store.TagListing{
		Tags:   tags,
		Tag:    tag,
		Stores: stores,
	}, nil
}

// SearchStores ranks stores by text relevance. A blank query matches nothing.
func (s *service) SearchStores(ctx context.Context, text string) ([]store.Store, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []store.Store{}, nil
	}

	stores, err := s.repository.SearchStores(ctx, text, store.SearchLimit)
	if err != nil {
		s.logger.Error("unexpected error when searching stores", zap.Error(err))
		return nil, err
	}

	return stores, nil
}

func (s *service) GetStoresNear(ctx context.Context, lng, lat float64) ([]store.NearbyStore, error) {
	center := geo.Point{Lng: lng, Lat: lat}
	if err := center.Validate(); err != nil {
		return nil, ErrInvalidCoordinates
	}

	candidates, err := s.repository.GetStoresInBox(ctx, geo.BoundingBox(center, store.NearMaxDistance))
	if err != nil {
		s.logger.Error("unexpected error when fetching stores near point", zap.Error(err))
		return nil, err
	}

	ranked := geo.Nearest(
		center,
		candidates,
		func(s store.Store) geo.Point { return s.Location.Point() },
		store.NearMaxDistance,
		store.NearLimit,
	)

	nearby := make([]store.NearbyStore, len(ranked))
	for i, r := range ranked {
		nearby[i] = store.NearbyStore{
			ID:          r.Item.ID,
			Slug:        r.Item.Slug,
			Name:        r.Item.Name,
			Description: r.Item.Description,
			Location:    r.Item.Location,
			Photo:       r.Item.Photo,
			Reviews:     r.Item.Reviews,
			Distance:    r.Distance,
		}
	}

	return nearby, nil
}

func (s *service) GetTopStores(ctx context.Context) ([]store.TopStore, error) {
	stores, err := s.repository.GetStoresWithMinReviews(ctx, store.TopMinReviews)
	if err != nil {
		s.logger.Error("unexpected error when fetching top store candidates", zap.Error(err))
		return nil, err
	}

	return ranking.TopStores(stores, store.TopMinReviews, store.TopLimit), nil
}
