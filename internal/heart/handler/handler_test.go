package hearthandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/storefront-backend/internal/apperror"
	jwtauth "github.com/xw1nchester/storefront-backend/internal/auth/jwt"
	mockhearthandler "github.com/xw1nchester/storefront-backend/internal/heart/handler/mocks"
	"github.com/xw1nchester/storefront-backend/internal/store"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const UserID = 1

func authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), jwtauth.UserIDContextKey{}, UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func TestHandler_toggleHeartHandler(t *testing.T) {
	tests := []struct {
		name               string
		target             string
		mockBehavior       func(s *mockhearthandler.MockService)
		expectedStatusCode int
		expectedHearts     []int
	}{
		{
			name:   "OK",
			target: "/stores/4/heart",
			mockBehavior: func(s *mockhearthandler.MockService) {
				s.EXPECT().ToggleHeart(gomock.Any(), UserID, 4).Return([]int{4}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedHearts:     []int{4},
		},
		{
			name:   "untoggle leaves no hearts",
			target: "/stores/4/heart",
			mockBehavior: func(s *mockhearthandler.MockService) {
				s.EXPECT().ToggleHeart(gomock.Any(), UserID, 4).Return([]int{}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedHearts:     []int{},
		},
		{
			name:   "unknown store",
			target: "/stores/4/heart",
			mockBehavior: func(s *mockhearthandler.MockService) {
				s.EXPECT().ToggleHeart(gomock.Any(), UserID, 4).Return(nil, apperror.ErrNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:               "invalid id",
			target:             "/stores/zero/heart",
			mockBehavior:       func(s *mockhearthandler.MockService) {},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mockhearthandler.NewMockService(ctrl)
			tc.mockBehavior(service)

			router := chi.NewRouter()
			New(service, authMiddleware, zap.NewNop()).Register(router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, tc.target, nil))

			require.Equal(t, tc.expectedStatusCode, w.Code)

			if tc.expectedHearts != nil {
				var resp HeartsResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tc.expectedHearts, resp.Hearts)
			}
		})
	}
}

func TestHandler_getHeartedStoresHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mockhearthandler.NewMockService(ctrl)
	service.EXPECT().GetHeartedStores(gomock.Any(), UserID).Return([]store.Store{{ID: 4}}, nil)

	router := chi.NewRouter()
	New(service, authMiddleware, zap.NewNop()).Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/hearts", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp StoresResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Stores, 1)
	assert.Equal(t, 4, resp.Stores[0].ID)
}
