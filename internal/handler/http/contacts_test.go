package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/ai-one-api/internal/service"
	"github.com/MKhiriev/ai-one-api/internal/store"
	"github.com/MKhiriev/ai-one-api/internal/validators"
	"github.com/MKhiriev/ai-one-api/models"
)

var testCreatedAt = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func TestCreateContact_Success(t *testing.T) {
	var got models.ContactCreate
	svc := &mockContactService{
		createFn: func(_ context.Context, input models.ContactCreate) (models.Contact, error) {
			got = input
			return models.Contact{ID: 1, FullName: input.FullName, Email: input.Email, PhoneNumber: input.PhoneNumber, CreatedAt: testCreatedAt}, nil
		},
	}
	router := newTestRouter(t, service.Services{ContactService: svc})

	rr := doRequest(t, router, http.MethodPost, "/contacts/", `{
		"full_name": "Ada Lovelace",
		"email": "ada@example.com",
		"phone_number": "+44 20 0000 0000",
		"birth_date": "1815-12-10"
	}`)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Equal(t, "Ada Lovelace", got.FullName)
	require.NotNil(t, got.BirthDate)
	assert.Equal(t, "1815-12-10", got.BirthDate.String())

	contact := decodeResponse[models.Contact](t, rr)
	assert.Equal(t, int64(1), contact.ID)
	assert.Equal(t, "ada@example.com", contact.Email)
	assert.Nil(t, contact.UpdatedAt)
}

func TestCreateContact_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantDetail string
	}{
		{name: "malformed json", body: `{"full_name":`, wantStatus: http.StatusBadRequest, wantDetail: "invalid JSON was passed"},
		{name: "bad birth date", body: `{"full_name":"A","email":"a@b.c","birth_date":"10/12/1815"}`, wantStatus: http.StatusBadRequest},
		{
			name:       "validation",
			body:       `{}`,
			svcErr:     fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidField),
			wantStatus: http.StatusBadRequest,
			wantDetail: "invalid data provided",
		},
		{name: "duplicate email", body: `{}`, svcErr: store.ErrContactEmailExists, wantStatus: http.StatusConflict, wantDetail: "contact with this email already exists"},
		{name: "database failure", body: `{}`, svcErr: fmt.Errorf("%w: boom", store.ErrExecutingStatement), wantStatus: http.StatusInternalServerError, wantDetail: "Internal Server Error"},
		{name: "unmapped failure", body: `{}`, svcErr: fmt.Errorf("something odd"), wantStatus: http.StatusInternalServerError, wantDetail: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockContactService{
				createFn: func(context.Context, models.ContactCreate) (models.Contact, error) {
					return models.Contact{}, tt.svcErr
				},
			}
			router := newTestRouter(t, service.Services{ContactService: svc})

			rr := doRequest(t, router, http.MethodPost, "/contacts/", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			resp := decodeResponse[errorResponse](t, rr)
			assert.Contains(t, resp.Detail, tt.wantDetail)
			assert.NotContains(t, resp.Detail, "boom")
		})
	}
}

func TestListContacts_Pagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPage   models.Page
		wantStatus int
	}{
		{name: "defaults", query: "", wantPage: models.Page{Skip: 0, Limit: 100}, wantStatus: http.StatusOK},
		{name: "skip and limit", query: "?skip=20&limit=10", wantPage: models.Page{Skip: 20, Limit: 10}, wantStatus: http.StatusOK},
		{name: "only limit", query: "?limit=5", wantPage: models.Page{Limit: 5}, wantStatus: http.StatusOK},
		{name: "negative skip", query: "?skip=-1", wantStatus: http.StatusBadRequest},
		{name: "text limit", query: "?limit=ten", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPage models.Page
			called := false
			svc := &mockContactService{
				listFn: func(_ context.Context, page models.Page) ([]models.Contact, error) {
					called = true
					gotPage = page
					return []models.Contact{{ID: 1}, {ID: 2}}, nil
				},
			}
			router := newTestRouter(t, service.Services{ContactService: svc})

			rr := doRequest(t, router, http.MethodGet, "/contacts/"+tt.query, nil)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				assert.False(t, called)
				return
			}
			assert.Equal(t, tt.wantPage, gotPage)
			assert.Len(t, decodeResponse[[]models.Contact](t, rr), 2)
		})
	}
}

func TestListContacts_PagingHeaders(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		total     uint64
		wantPages string
		wantNext  string
	}{
		{name: "more pages", query: "?limit=2", total: 5, wantPages: "3", wantNext: "true"},
		{name: "last page", query: "?skip=3&limit=2", total: 5, wantPages: "3", wantNext: "false"},
		{name: "exact fit", query: "?limit=2", total: 2, wantPages: "1", wantNext: "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockContactService{
				listFn: func(_ context.Context, _ models.Page) ([]models.Contact, error) {
					return []models.Contact{{ID: 1}, {ID: 2}}, nil
				},
				countFn: func(_ context.Context, _ models.Page) (uint64, error) {
					return tt.total, nil
				},
			}
			router := newTestRouter(t, service.Services{ContactService: svc})

			rr := doRequest(t, router, http.MethodGet, "/contacts/"+tt.query, nil)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, itoa(int64(tt.total)), rr.Header().Get(totalCountHeader))
			assert.Equal(t, tt.wantPages, rr.Header().Get(totalPagesHeader))
			assert.Equal(t, tt.wantNext, rr.Header().Get(hasNextHeader))
		})
	}
}

func TestListContacts_SearchAndOrderReachService(t *testing.T) {
	var listed, counted models.Page
	svc := &mockContactService{
		listFn: func(_ context.Context, page models.Page) ([]models.Contact, error) {
			listed = page
			return nil, nil
		},
		countFn: func(_ context.Context, page models.Page) (uint64, error) {
			counted = page
			return 0, nil
		},
	}
	router := newTestRouter(t, service.Services{ContactService: svc})

	rr := doRequest(t, router, http.MethodGet, "/contacts/?search=ada&orderBy=full_name&orderDir=DESC", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	want := models.Page{Limit: models.DefaultPageLimit, Search: "ada", OrderBy: "full_name", OrderDir: models.SortDesc}
	assert.Equal(t, want, listed)
	assert.Equal(t, want, counted)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestListContacts_CountErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unknown sort column", err: store.ErrInvalidSortColumn, wantStatus: http.StatusBadRequest},
		{name: "query failure", err: store.ErrExecutingQuery, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockContactService{
				countFn: func(_ context.Context, _ models.Page) (uint64, error) {
					return 0, tt.err
				},
			}
			router := newTestRouter(t, service.Services{ContactService: svc})

			rr := doRequest(t, router, http.MethodGet, "/contacts/", nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Empty(t, rr.Header().Get(totalCountHeader))
		})
	}
}

func TestListContacts_EmptyIsArray(t *testing.T) {
	router := newTestRouter(t, service.Services{})

	rr := doRequest(t, router, http.MethodGet, "/contacts/", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGetContact(t *testing.T) {
	svc := &mockContactService{
		getFn: func(_ context.Context, id int64) (models.Contact, error) {
			if id == 42 {
				return models.Contact{ID: 42, FullName: "Grace Hopper"}, nil
			}
			return models.Contact{}, store.ErrContactNotFound
		},
	}
	router := newTestRouter(t, service.Services{ContactService: svc})

	rr := doRequest(t, router, http.MethodGet, "/contacts/42", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Grace Hopper", decodeResponse[models.Contact](t, rr).FullName)

	rr = doRequest(t, router, http.MethodGet, "/contacts/43", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "contact was not found", decodeResponse[errorResponse](t, rr).Detail)
}

func TestContactByID_InvalidID(t *testing.T) {
	router := newTestRouter(t, service.Services{})

	for _, id := range []string{"abc", "0", "-5", "1.5", "99999999999999999999"} {
		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
			rr := doRequest(t, router, method, "/contacts/"+id, `{"full_name":"x"}`)
			assert.Equal(t, http.StatusBadRequest, rr.Code, "%s /contacts/%s", method, id)
		}
	}
}

func TestUpdateContact(t *testing.T) {
	var gotID int64
	var gotInput models.ContactUpdate
	updatedAt := testCreatedAt.Add(time.Hour)
	svc := &mockContactService{
		updateFn: func(_ context.Context, id int64, input models.ContactUpdate) (models.Contact, error) {
			gotID, gotInput = id, input
			return models.Contact{ID: id, FullName: *input.FullName, UpdatedAt: &updatedAt}, nil
		},
	}
	router := newTestRouter(t, service.Services{ContactService: svc})

	rr := doRequest(t, router, http.MethodPut, "/contacts/9", `{"full_name":"Ada King"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(9), gotID)
	assert.Equal(t, "Ada King", *gotInput.FullName)
	assert.Nil(t, gotInput.Email)

	contact := decodeResponse[models.Contact](t, rr)
	require.NotNil(t, contact.UpdatedAt)
	assert.True(t, updatedAt.Equal(*contact.UpdatedAt))
}

func TestDeleteContact(t *testing.T) {
	svc := &mockContactService{
		deleteFn: func(_ context.Context, id int64) error {
			if id == 1 {
				return nil
			}
			return store.ErrContactNotFound
		},
	}
	router := newTestRouter(t, service.Services{ContactService: svc})

	rr := doRequest(t, router, http.MethodDelete, "/contacts/1", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = doRequest(t, router, http.MethodDelete, "/contacts/2", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
