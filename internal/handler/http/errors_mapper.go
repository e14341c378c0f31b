package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/ai-one-api/internal/service"
	"github.com/MKhiriev/ai-one-api/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidID:         http.StatusBadRequest,
	ErrInvalidPagination: http.StatusBadRequest,
	ErrInvalidJSON:       http.StatusBadRequest,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrSealingSecret:       http.StatusInternalServerError,

	store.ErrContactNotFound:    http.StatusNotFound,
	store.ErrNoteNotFound:       http.StatusNotFound,
	store.ErrCredentialNotFound: http.StatusNotFound,
	store.ErrTaskNotFound:       http.StatusNotFound,
	store.ErrContactEmailExists: http.StatusConflict,
	store.ErrInvalidSortColumn:  http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// detailFromError is the message returned to the client. Internal failures
// are not described.
func detailFromError(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
