package heartservice

import (
	"context"
	"errors"

	"github.com/xw1nchester/storefront-backend/internal/apperror"
	heartdb "github.com/xw1nchester/storefront-backend/internal/heart/db"
	"github.com/xw1nchester/storefront-backend/internal/store"
	"github.com/xw1nchester/storefront-backend/pkg/transactor"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockheartservice
type Repository interface {
	Toggle(ctx context.Context, userID, storeID int) error
	ListStoreIDs(ctx context.Context, userID int) ([]int, error)
}

type StoreService interface {
	CheckStoreExists(ctx context.Context, id int) error
	GetStoresByIDs(ctx context.Context, ids []int) ([]store.Store, error)
}

type service struct {
	repository   Repository
	storeService StoreService
	txManager    transactor.Manager
	logger       *zap.Logger
}

func New(
	repository Repository,
	storeService StoreService,
	txManager transactor.Manager,
	logger *zap.Logger,
) *service {
	return &service{
		repository:   repository,
		storeService: storeService,
		txManager:    txManager,
		logger:       logger,
	}
}

// ToggleHeart flips the heart of userID on storeID and returns the ids of
// every store the user hearts afterwards.
func (s *service) ToggleHeart(ctx context.Context, userID, storeID int) ([]int, error) {
	if err := s.storeService.CheckStoreExists(ctx, storeID); err != nil {
		return nil, err
	}

	var hearts []int
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.repository.Toggle(ctx, userID, storeID); err != nil {
			switch {
			case errors.Is(err, heartdb.ErrStoreNotFound):
				return apperror.ErrNotFound
			case errors.Is(err, heartdb.ErrUserNotFound):
				return apperror.ErrUnauthorized
			}

			s.logger.Error("unexpected error when toggling heart", zap.Error(err))

			return err
		}

		var err error
		hearts, err = s.repository.ListStoreIDs(ctx, userID)
		if err != nil {
			s.logger.Error("unexpected error when listing hearts", zap.Error(err))
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return hearts, nil
}

func (s *service) GetHeartedStores(ctx context.Context, userID int) ([]store.Store, error) {
	ids, err := s.repository.ListStoreIDs(ctx, userID)
	if err != nil {
		s.logger.Error("unexpected error when listing hearts", zap.Error(err))
		return nil, err
	}

	return s.storeService.GetStoresByIDs(ctx, ids)
}
