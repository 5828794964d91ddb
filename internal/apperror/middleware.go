package apperror

import (
	"errors"
	"net/http"
)

type handler func(w http.ResponseWriter, r *http.Request) error

func Middleware(h handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		err := h(w, r)

		var appErr *AppError
		if err != nil {
			if errors.As(err, &appErr) {
				w.WriteHeader(statusCode(err))
				w.Write(appErr.Marshal())

				return
			}

			w.WriteHeader(http.StatusInternalServerError)
			w.Write(internalError().Marshal())
		}
	}
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
