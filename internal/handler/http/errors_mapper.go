package http

import (
	"errors"
	"net/http"

	"github.com/ametelin/veriauth/internal/service"
	"github.com/ametelin/veriauth/internal/store"
)

// errorStatusMap resolves business-rule sentinels to specific statuses;
// infrastructure errors deliberately fall through to a generic 500 so that
// no internal detail leaks to the caller.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusBadRequest,
	service.ErrInvalidOrExpiredToken:   http.StatusBadRequest,
	service.ErrEmailNotVerified:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrNoTokenMatch:       http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
