package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/ai-one-api/internal/config"
	"github.com/MKhiriev/ai-one-api/internal/logger"
	"github.com/MKhiriev/ai-one-api/internal/service"
	"github.com/MKhiriev/ai-one-api/models"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

type mockContactService struct {
	countFn  func(ctx context.Context, page models.Page) (uint64, error)
	createFn func(ctx context.Context, input models.ContactCreate) (models.Contact, error)
	getFn    func(ctx context.Context, id int64) (models.Contact, error)
	listFn   func(ctx context.Context, page models.Page) ([]models.Contact, error)
	updateFn func(ctx context.Context, id int64, input models.ContactUpdate) (models.Contact, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockContactService) CreateContact(ctx context.Context, input models.ContactCreate) (models.Contact, error) {
	if m.createFn != nil {
		return m.createFn(ctx, input)
	}
	return models.Contact{}, nil
}

func (m *mockContactService) GetContact(ctx context.Context, id int64) (models.Contact, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Contact{}, nil
}

func (m *mockContactService) ListContacts(ctx context.Context, page models.Page) ([]models.Contact, error) {
	if m.listFn != nil {
		return m.listFn(ctx, page)
	}
	return nil, nil
}

// CountContacts reports the length of the listed page unless countFn is set.
func (m *mockContactService) CountContacts(ctx context.Context, page models.Page) (uint64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, page)
	}
	items, err := m.ListContacts(ctx, page)
	return uint64(len(items)), err
}

func (m *mockContactService) UpdateContact(ctx context.Context, id int64, input models.ContactUpdate) (models.Contact, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, input)
	}
	return models.Contact{}, nil
}

func (m *mockContactService) DeleteContact(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockNoteService struct {
	countFn  func(ctx context.Context, page models.Page) (uint64, error)
	createFn func(ctx context.Context, input models.NoteCreate) (models.Note, error)
	listFn   func(ctx context.Context, page models.Page) ([]models.Note, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockNoteService) CreateNote(ctx context.Context, input models.NoteCreate) (models.Note, error) {
	if m.createFn != nil {
		return m.createFn(ctx, input)
	}
	return models.Note{}, nil
}

func (m *mockNoteService) GetNote(context.Context, int64) (models.Note, error) {
	return models.Note{}, nil
}

func (m *mockNoteService) ListNotes(ctx context.Context, page models.Page) ([]models.Note, error) {
	if m.listFn != nil {
		return m.listFn(ctx, page)
	}
	return nil, nil
}

// CountNotes reports the length of the listed page unless countFn is set.
func (m *mockNoteService) CountNotes(ctx context.Context, page models.Page) (uint64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, page)
	}
	items, err := m.ListNotes(ctx, page)
	return uint64(len(items)), err
}

func (m *mockNoteService) UpdateNote(context.Context, int64, models.NoteUpdate) (models.Note, error) {
	return models.Note{}, nil
}

func (m *mockNoteService) DeleteNote(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockCredentialService struct {
	countFn  func(ctx context.Context, page models.Page) (uint64, error)
	createFn func(ctx context.Context, input models.CredentialCreate) (models.Credential, error)
	getFn    func(ctx context.Context, id int64) (models.CredentialDetail, error)
	listFn   func(ctx context.Context, page models.Page) ([]models.Credential, error)
	updateFn func(ctx context.Context, id int64, input models.CredentialUpdate) (models.Credential, error)
}

func (m *mockCredentialService) CreateCredential(ctx context.Context, input models.CredentialCreate) (models.Credential, error) {
	if m.createFn != nil {
		return m.createFn(ctx, input)
	}
	return models.Credential{}, nil
}

func (m *mockCredentialService) GetCredential(ctx context.Context, id int64) (models.CredentialDetail, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.CredentialDetail{}, nil
}

func (m *mockCredentialService) ListCredentials(ctx context.Context, page models.Page) ([]models.Credential, error) {
	if m.listFn != nil {
		return m.listFn(ctx, page)
	}
	return nil, nil
}

// CountCredentials reports the length of the listed page unless countFn is set.
func (m *mockCredentialService) CountCredentials(ctx context.Context, page models.Page) (uint64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, page)
	}
	items, err := m.ListCredentials(ctx, page)
	return uint64(len(items)), err
}

func (m *mockCredentialService) UpdateCredential(ctx context.Context, id int64, input models.CredentialUpdate) (models.Credential, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, input)
	}
	return models.Credential{}, nil
}

func (m *mockCredentialService) DeleteCredential(context.Context, int64) error {
	return nil
}

type mockTaskService struct {
	countFn  func(ctx context.Context, page models.Page) (uint64, error)
	createFn func(ctx context.Context, input models.TaskCreate) (models.Task, error)
	getFn    func(ctx context.Context, id int64) (models.Task, error)
	updateFn func(ctx context.Context, id int64, input models.TaskUpdate) (models.Task, error)
}

func (m *mockTaskService) CreateTask(ctx context.Context, input models.TaskCreate) (models.Task, error) {
	if m.createFn != nil {
		return m.createFn(ctx, input)
	}
	return models.Task{}, nil
}

func (m *mockTaskService) GetTask(ctx context.Context, id int64) (models.Task, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Task{}, nil
}

func (m *mockTaskService) ListTasks(context.Context, models.Page) ([]models.Task, error) {
	return nil, nil
}

// CountTasks reports the length of the listed page unless countFn is set.
func (m *mockTaskService) CountTasks(ctx context.Context, page models.Page) (uint64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, page)
	}
	items, err := m.ListTasks(ctx, page)
	return uint64(len(items)), err
}

func (m *mockTaskService) UpdateTask(ctx context.Context, id int64, input models.TaskUpdate) (models.Task, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, input)
	}
	return models.Task{}, nil
}

func (m *mockTaskService) DeleteTask(context.Context, int64) error {
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testServerConfig disables rate limiting and the request timeout.
func testServerConfig() config.Server {
	return config.Server{
		HTTPAddress:    "localhost:8000",
		AllowedOrigins: config.DefaultAllowedOrigins,
	}
}

// newTestServices fills every service missing from svcs with an empty fake.
func newTestServices(svcs service.Services) *service.Services {
	if svcs.ContactService == nil {
		svcs.ContactService = &mockContactService{}
	}
	if svcs.NoteService == nil {
		svcs.NoteService = &mockNoteService{}
	}
	if svcs.CredentialService == nil {
		svcs.CredentialService = &mockCredentialService{}
	}
	if svcs.TaskService == nil {
		svcs.TaskService = &mockTaskService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	return &svcs
}

func newTestRouter(t *testing.T, svcs service.Services) http.Handler {
	t.Helper()
	return NewHandler(newTestServices(svcs), testServerConfig(), logger.Nop()).Init()
}

// doRequest sends body (marshalled to JSON unless it is a string) through
// router and returns the recorded response.
func doRequest(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		buf := &bytes.Buffer{}
		require.NoError(t, json.NewEncoder(buf).Encode(b))
		reader = buf
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeResponse[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func strPtr(s string) *string { return &s }

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// jsonField returns the raw JSON of a top-level field of body.
func jsonField(t *testing.T, body []byte, name string) json.RawMessage {
	t.Helper()
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &fields))
	raw, ok := fields[name]
	require.True(t, ok, "field %q missing in %s", name, body)
	return raw
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }
