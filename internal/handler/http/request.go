package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/ai-one-api/internal/logger"
	"github.com/MKhiriev/ai-one-api/internal/utils"
	"github.com/MKhiriev/ai-one-api/models"
)

// maxBodyBytes caps the size of a decoded request body.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// parseID reads the {id} path parameter.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// Paging metadata of list responses. The body stays a plain JSON array.
const (
	totalCountHeader = "X-Total-Count"
	totalPagesHeader = "X-Total-Pages"
	hasNextHeader    = "X-Has-Next"
)

// parsePage reads the skip, limit, search, order_by and order_dir query
// parameters; orderBy and orderDir are accepted as aliases. Missing values
// fall back to the first page of [models.DefaultPageLimit] records ordered
// by id. Range and column checks are left to the service and the store.
func parsePage(r *http.Request) (models.Page, error) {
	page := models.DefaultPage()
	query := r.URL.Query()

	if raw := query.Get("skip"); raw != "" {
		skip, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.Page{}, ErrInvalidPagination
		}
		page.Skip = skip
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.Page{}, ErrInvalidPagination
		}
		page.Limit = limit
	}

	page.Search = strings.TrimSpace(query.Get("search"))
	page.OrderBy = firstParam(query, "order_by", "orderBy")
	page.OrderDir = models.SortDirection(strings.ToLower(firstParam(query, "order_dir", "orderDir")))

	return page, nil
}

func firstParam(query url.Values, names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(query.Get(name)); v != "" {
			return v
		}
	}
	return ""
}

// writePage writes items as a JSON array with the paging headers. A nil
// slice is written as [].
func writePage[T any](w http.ResponseWriter, page models.Page, items []T, total uint64) {
	if items == nil {
		items = []T{}
	}

	info := models.NewPageInfo(page, len(items), total)
	w.Header().Set(totalCountHeader, strconv.FormatUint(info.Total, 10))
	w.Header().Set(totalPagesHeader, strconv.FormatUint(info.TotalPages, 10))
	w.Header().Set(hasNextHeader, strconv.FormatBool(info.HasNext))

	utils.WriteJSON(w, items, http.StatusOK)
}

// decodeJSON decodes the request body into dst. Unknown fields are ignored.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// writeError logs err and writes the mapped status with a JSON detail.
func writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg("request failed")

	utils.WriteJSON(w, errorResponse{Detail: detailFromError(err, status)}, status)
}
