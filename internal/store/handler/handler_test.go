package storehandler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/storefront-backend/internal/apperror"
	jwtauth "github.com/xw1nchester/storefront-backend/internal/auth/jwt"
	"github.com/xw1nchester/storefront-backend/internal/store"
	mockstorehandler "github.com/xw1nchester/storefront-backend/internal/store/handler/mocks"
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

func setupRouter(t *testing.T) (*mockstorehandler.MockService, chi.Router) {
	ctrl := gomock.NewController(t)
	service := mockstorehandler.NewMockService(ctrl)

	router := chi.NewRouter()
	New(service, authMiddleware, zap.NewNop()).Register(router)

	return service, router
}

func serve(router chi.Router, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_getStoresHandler(t *testing.T) {
	tests := []struct {
		name               string
		target             string
		mockBehavior       func(s *mockstorehandler.MockService)
		expectedStatusCode int
		expectedLocation   string
	}{
		{
			name:   "first page by default",
			target: "/stores",
			mockBehavior: func(s *mockstorehandler.MockService) {
				s.EXPECT().GetStores(gomock.Any(), 1).Return(&store.StoresPage{Page: 1, Pages: 1}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:   "explicit page",
			target: "/stores/page/3",
			mockBehavior: func(s *mockstorehandler.MockService) {
				s.EXPECT().GetStores(gomock.Any(), 3).Return(&store.StoresPage{Page: 3, Pages: 3}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:   "page past the end redirects to the last page",
			target: "/stores/page/9",
			mockBehavior: func(s *mockstorehandler.MockService) {
				s.EXPECT().GetStores(gomock.Any(), 9).Return(nil, &store.PageOutOfRangeError{Requested: 9, Last: 2})
			},
			expectedStatusCode: http.StatusFound,
			expectedLocation:   "/api/stores/page/2",
		},
		{
			name:               "page is not a number",
			target:             "/stores/page/abc",
			mockBehavior:       func(s *mockstorehandler.MockService) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:   "service failure",
			target: "/stores",
			mockBehavior: func(s *mockstorehandler.MockService) {
				s.EXPECT().GetStores(gomock.Any(), 1).Return(nil, errors.New("unexpected error"))
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			service, router := setupRouter(t)
			tc.mockBehavior(service)

			w := serve(router, http.MethodGet, tc.target, "")

			assert.Equal(t, tc.expectedStatusCode, w.Code)
			if tc.expectedLocation != "" {
				assert.Equal(t, tc.expectedLocation, w.Header().Get("Location"))
			}
		})
	}
}

func TestHandler_createStoreHandler(t *testing.T) {
	tests := []struct {
		name               string
		inputBody          string
		mockBehavior       func(s *mockstorehandler.MockService)
		expectedStatusCode int
	}{
		{
			name:      "OK with string coordinates",
			inputBody: `{"name":"Coffee Shop","tags":["Wifi"],"location":{"address":"1 King St","coordinates":["-79.38","43.65"]}}`,
			mockBehavior: func(s *mockstorehandler.MockService) {
				s.EXPECT().CreateStore(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, data store.Store) (*store.Store, error) {
						assert.Equal(t, UserID, data.AuthorID)
						assert.Equal(t, [2]float64{-79.38, 43.65}, data.Location.Coordinates)
						data.ID = 1
						data.Slug = "coffee-shop"
						return &data, nil
					},
				)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "missing name",
			inputBody:          `{"location":{"address":"1 King St","coordinates":[1,2]}}`,
			mockBehavior:       func(s *mockstorehandler.MockService) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "one coordinate",
			inputBody:          `{"name":"Coffee Shop","location":{"address":"1 King St","coordinates":[1]}}`,
			mockBehavior:       func(s *mockstorehandler.MockService) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "malformed body",
			inputBody:          `{"name":`,
			mockBehavior:       func(s *mockstorehandler.MockService) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:      "domain validation failure",
			inputBody: `{"name":"!!!","location":{"address":"1 King St","coordinates":[1,2]}}`,
			mockBehavior: func(s *mockstorehandler.MockService) {
				s.EXPECT().CreateStore(gomock.Any(), gomock.Any()).Return(nil, apperror.NewAppError("bad name"))
			},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			service, router := setupRouter(t)
			tc.mockBehavior(service)

			w := serve(router, http.MethodPost, "/stores", tc.inputBody)

			assert.Equal(t, tc.expectedStatusCode, w.Code)
		})
	}
}

func TestHandler_updateStoreHandler(t *testing.T) {
	body := `{"name":"Coffee Shop","location":{"address":"1 King St","coordinates":[1,2]}}`

	t.Run("not owner", func(t *testing.T) {
		service, router := setupRouter(t)
		service.EXPECT().UpdateStore(gomock.Any(), 5, UserID, gomock.Any()).Return(nil, apperror.ErrForbidden)

		w := serve(router, http.MethodPut, "/stores/5", body)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("slug conflict", func(t *testing.T) {
		service, router := setupRouter(t)
		service.EXPECT().UpdateStore(gomock.Any(), 5, UserID, gomock.Any()).Return(nil, apperror.ErrConflict)

		w := serve(router, http.MethodPut, "/stores/5", body)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, router := setupRouter(t)

		w := serve(router, http.MethodPut, "/stores/abc", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("OK", func(t *testing.T) {
		service, router := setupRouter(t)
		service.EXPECT().UpdateStore(gomock.Any(), 5, UserID, gomock.Any()).Return(&store.Store{ID: 5, Slug: "coffee-shop"}, nil)

		w := serve(router, http.MethodPut, "/stores/5", body)

		require.Equal(t, http.StatusOK, w.Code)

		var resp StoreResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "coffee-shop", resp.Store.Slug)
	})
}

func TestHandler_getStoreForEditHandler(t *testing.T) {
	service, router := setupRouter(t)
	service.EXPECT().GetStoreForEdit(gomock.Any(), 5, UserID).Return(nil, apperror.ErrForbidden)

	w := serve(router, http.MethodGet, "/stores/5/edit", "")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_getStoreBySlugHandler(t *testing.T) {
	service, router := setupRouter(t)
	service.EXPECT().GetStoreBySlug(gomock.Any(), "missing").Return(nil, apperror.ErrNotFound)

	w := serve(router, http.MethodGet, "/store/missing", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_getStoresByTagHandler(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		expectedTag string
	}{
		{name: "all tags", target: "/tags", expectedTag: ""},
		{name: "single tag", target: "/tags/Wifi", expectedTag: "Wifi"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			service, router := setupRouter(t)
			service.EXPECT().GetStoresByTag(gomock.Any(), tc.expectedTag).Return(&store.TagListing{Tag: tc.expectedTag}, nil)

			w := serve(router, http.MethodGet, tc.target, "")

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestHandler_searchStoresHandler(t *testing.T) {
	service, router := setupRouter(t)
	service.EXPECT().SearchStores(gomock.Any(), "coffee beans").Return([]store.Store{{ID: 1}}, nil)

	w := serve(router, http.MethodGet, "/search?q=coffee+beans", "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp StoresResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Stores, 1)
}

func TestHandler_getStoresNearHandler(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		service, router := setupRouter(t)
		service.EXPECT().GetStoresNear(gomock.Any(), -79.38, 43.65).Return([]store.NearbyStore{}, nil)

		w := serve(router, http.MethodGet, "/stores/near?lng=-79.38&lat=43.65", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing lat", func(t *testing.T) {
		_, router := setupRouter(t)

		w := serve(router, http.MethodGet, "/stores/near?lng=-79.38", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_getTopStoresHandler(t *testing.T) {
	service, router := setupRouter(t)
	service.EXPECT().GetTopStores(gomock.Any()).Return([]store.TopStore{{ID: 1, AverageRating: 4.5}}, nil)

	w := serve(router, http.MethodGet, "/top", "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp TopStoresResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4.5, resp.Stores[0].AverageRating)
}
