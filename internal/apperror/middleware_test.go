package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name               string
		err                error
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:               "no error",
			err:                nil,
			expectedStatusCode: http.StatusOK,
			expectedBody:       "",
		},
		{
			name:               "not found",
			err:                ErrNotFound,
			expectedStatusCode: http.StatusNotFound,
			expectedBody:       `{"message":"not found"}`,
		},
		{
			name:               "wrapped not found",
			err:                fmt.Errorf("get store: %w", ErrNotFound),
			expectedStatusCode: http.StatusNotFound,
			expectedBody:       `{"message":"not found"}`,
		},
		{
			name:               "unauthorized",
			err:                ErrUnauthorized,
			expectedStatusCode: http.StatusUnauthorized,
			expectedBody:       `{"message":"unauthorized"}`,
		},
		{
			name:               "forbidden",
			err:                ErrForbidden,
			expectedStatusCode: http.StatusForbidden,
			expectedBody:       `{"message":"you must own a store in order to edit it"}`,
		},
		{
			name:               "conflict",
			err:                ErrConflict,
			expectedStatusCode: http.StatusConflict,
			expectedBody:       `{"message":"a store with this name was saved at the same time, try again"}`,
		},
		{
			name:               "validation",
			err:                NewAppError("field name is a required field"),
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       `{"message":"field name is a required field"}`,
		},
		{
			name:               "unexpected",
			err:                errors.New("connection refused"),
			expectedStatusCode: http.StatusInternalServerError,
			expectedBody:       `{"message":"internal error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Middleware(func(w http.ResponseWriter, r *http.Request) error {
				return tt.err
			})

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
			assert.Equal(t, tt.expectedBody, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}
