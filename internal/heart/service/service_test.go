package heartservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/storefront-backend/internal/apperror"
	heartdb "github.com/xw1nchester/storefront-backend/internal/heart/db"
	mockheartservice "github.com/xw1nchester/storefront-backend/internal/heart/service/mocks"
	"github.com/xw1nchester/storefront-backend/internal/store"
	mocktransactor "github.com/xw1nchester/storefront-backend/pkg/transactor/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	UserID  = 1
	StoreID = 10
)

var ErrUnexpected = errors.New("unexpected error")

func TestToggleHeart(t *testing.T) {
	type mockBehavior func(
		repo *mockheartservice.MockRepository,
		storeService *mockheartservice.MockStoreService,
		txManager *mocktransactor.MockManager,
	)

	passThrough := func(txManager *mocktransactor.MockManager) {
		txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			},
		)
	}

	tests := []struct {
		name           string
		mockBehavior   mockBehavior
		expectedHearts []int
		expectedErr    error
	}{
		{
			name: "toggles and lists hearts",
			mockBehavior: func(repo *mockheartservice.MockRepository, storeService *mockheartservice.MockStoreService, txManager *mocktransactor.MockManager) {
				storeService.EXPECT().CheckStoreExists(gomock.Any(), StoreID).Return(nil)
				passThrough(txManager)
				repo.EXPECT().Toggle(gomock.Any(), UserID, StoreID).Return(nil)
				repo.EXPECT().ListStoreIDs(gomock.Any(), UserID).Return([]int{3, StoreID}, nil)
			},
			expectedHearts: []int{3, StoreID},
		},
		{
			name: "unknown store",
			mockBehavior: func(repo *mockheartservice.MockRepository, storeService *mockheartservice.MockStoreService, txManager *mocktransactor.MockManager) {
				storeService.EXPECT().CheckStoreExists(gomock.Any(), StoreID).Return(apperror.ErrNotFound)
			},
			expectedErr: apperror.ErrNotFound,
		},
		{
			name: "store deleted between check and toggle",
			mockBehavior: func(repo *mockheartservice.MockRepository, storeService *mockheartservice.MockStoreService, txManager *mocktransactor.MockManager) {
				storeService.EXPECT().CheckStoreExists(gomock.Any(), StoreID).Return(nil)
				passThrough(txManager)
				repo.EXPECT().Toggle(gomock.Any(), UserID, StoreID).Return(heartdb.ErrStoreNotFound)
			},
			expectedErr: apperror.ErrNotFound,
		},
		{
			name: "user from token does not exist",
			mockBehavior: func(repo *mockheartservice.MockRepository, storeService *mockheartservice.MockStoreService, txManager *mocktransactor.MockManager) {
				storeService.EXPECT().CheckStoreExists(gomock.Any(), StoreID).Return(nil)
				passThrough(txManager)
				repo.EXPECT().Toggle(gomock.Any(), UserID, StoreID).Return(heartdb.ErrUserNotFound)
			},
			expectedErr: apperror.ErrUnauthorized,
		},
		{
			name: "listing failure",
			mockBehavior: func(repo *mockheartservice.MockRepository, storeService *mockheartservice.MockStoreService, txManager *mocktransactor.MockManager) {
				storeService.EXPECT().CheckStoreExists(gomock.Any(), StoreID).Return(nil)
				passThrough(txManager)
				repo.EXPECT().Toggle(gomock.Any(), UserID, StoreID).Return(nil)
				repo.EXPECT().ListStoreIDs(gomock.Any(), UserID).Return(nil, ErrUnexpected)
			},
			expectedErr: ErrUnexpected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := mockheartservice.NewMockRepository(ctrl)
			storeService := mockheartservice.NewMockStoreService(ctrl)
			txManager := mocktransactor.NewMockManager(ctrl)
			tt.mockBehavior(repo, storeService, txManager)

			s := New(repo, storeService, txManager, zap.NewNop())

			hearts, err := s.ToggleHeart(context.Background(), UserID, StoreID)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedHearts, hearts)
		})
	}
}

func TestGetHeartedStores(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mockheartservice.NewMockRepository(ctrl)
	storeService := mockheartservice.NewMockStoreService(ctrl)

	repo.EXPECT().ListStoreIDs(gomock.Any(), UserID).Return([]int{2, 5}, nil)
	storeService.EXPECT().GetStoresByIDs(gomock.Any(), []int{2, 5}).Return([]store.Store{{ID: 2}, {ID: 5}}, nil)

	s := New(repo, storeService, mocktransactor.NewMockManager(ctrl), zap.NewNop())

	stores, err := s.GetHeartedStores(context.Background(), UserID)

	require.NoError(t, err)
	assert.Len(t, stores, 2)
}
