package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/ai-one-api/internal/logger"
	"github.com/MKhiriev/ai-one-api/internal/mock"
	"github.com/MKhiriev/ai-one-api/internal/validators"
	"github.com/MKhiriev/ai-one-api/models"
)

// ─────────────────────────────────────────────
// Wrap
// ─────────────────────────────────────────────

func TestValidationServices_WrapReturnsDecorator(t *testing.T) {
	v := validators.NewRecordValidator()
	ctrl := gomock.NewController(t)

	contacts := NewContactValidationService(v).Wrap(NewContactService(mock.NewMockContactRepository(ctrl), logger.Nop()))
	notes := NewNoteValidationService(v).Wrap(NewNoteService(mock.NewMockNoteRepository(ctrl), logger.Nop()))
	credentials := NewCredentialValidationService(v).Wrap(NewCredentialService(mock.NewMockCredentialRepository(ctrl), mock.NewMockFieldCipher(ctrl), logger.Nop()))
	tasks := NewTaskValidationService(v).Wrap(NewTaskService(mock.NewMockTaskRepository(ctrl), logger.Nop()))

	assert.IsType(t, &ContactValidationService{}, contacts)
	assert.IsType(t, &NoteValidationService{}, notes)
	assert.IsType(t, &CredentialValidationService{}, credentials)
	assert.IsType(t, &TaskValidationService{}, tasks)
}

// ─────────────────────────────────────────────
// Validator errors
// ─────────────────────────────────────────────

func TestContactValidationService_RejectsBeforeInner(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockContactRepository(ctrl)
	validator := mock.NewMockValidator(ctrl)

	validator.EXPECT().Validate(gomock.Any(), models.ContactCreate{}).Return(validators.ErrInvalidField)
	// repo has no expectations: inner must not be reached

	svc := NewContactValidationService(validator).Wrap(NewContactService(repo, logger.Nop()))
	_, err := svc.CreateContact(context.Background(), models.ContactCreate{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidField)
}

func TestContactValidationService_PassesValidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockContactRepository(ctrl)
	validator := mock.NewMockValidator(ctrl)

	input := models.ContactCreate{FullName: "Ada", Email: "ada@example.com"}
	gomock.InOrder(
		validator.EXPECT().Validate(gomock.Any(), input).Return(nil),
		repo.EXPECT().Create(gomock.Any(), input).Return(models.Contact{ID: 1}, nil),
	)

	svc := NewContactValidationService(validator).Wrap(NewContactService(repo, logger.Nop()))
	got, err := svc.CreateContact(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestValidationServices_GetAndDeleteSkipValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	validator := mock.NewMockValidator(ctrl)
	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Times(0)

	contacts := mock.NewMockContactRepository(ctrl)
	contacts.EXPECT().Get(gomock.Any(), int64(1)).Return(models.Contact{}, nil)
	contacts.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

	notes := mock.NewMockNoteRepository(ctrl)
	notes.EXPECT().Get(gomock.Any(), int64(1)).Return(models.Note{}, nil)
	notes.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

	tasks := mock.NewMockTaskRepository(ctrl)
	tasks.EXPECT().Get(gomock.Any(), int64(1)).Return(models.Task{}, nil)
	tasks.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

	creds := mock.NewMockCredentialRepository(ctrl)
	creds.EXPECT().Get(gomock.Any(), int64(1)).Return(models.Credential{ID: 1}, nil)
	creds.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

	ctx := context.Background()

	cs := NewContactValidationService(validator).Wrap(NewContactService(contacts, logger.Nop()))
	_, err := cs.GetContact(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, cs.DeleteContact(ctx, 1))

	ns := NewNoteValidationService(validator).Wrap(NewNoteService(notes, logger.Nop()))
	_, err = ns.GetNote(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, ns.DeleteNote(ctx, 1))

	ts := NewTaskValidationService(validator).Wrap(NewTaskService(tasks, logger.Nop()))
	_, err = ts.GetTask(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, ts.DeleteTask(ctx, 1))

	crs := NewCredentialValidationService(validator).Wrap(NewCredentialService(creds, mock.NewMockFieldCipher(ctrl), logger.Nop()))
	_, err = crs.GetCredential(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, crs.DeleteCredential(ctx, 1))
}

// ─────────────────────────────────────────────
// Real validator
// ─────────────────────────────────────────────

func TestValidationServices_RealValidator(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := validators.NewRecordValidator()
	ctx := context.Background()

	notes := NewNoteValidationService(v).Wrap(NewNoteService(mock.NewMockNoteRepository(ctrl), logger.Nop()))
	tasks := NewTaskValidationService(v).Wrap(NewTaskService(mock.NewMockTaskRepository(ctrl), logger.Nop()))
	creds := NewCredentialValidationService(v).Wrap(NewCredentialService(mock.NewMockCredentialRepository(ctrl), mock.NewMockFieldCipher(ctrl), logger.Nop()))
	contacts := NewContactValidationService(v).Wrap(NewContactService(mock.NewMockContactRepository(ctrl), logger.Nop()))

	tests := []struct {
		name    string
		call    func() error
		wantErr error
	}{
		{name: "note without title", call: func() error { _, err := notes.CreateNote(ctx, models.NoteCreate{}); return err }, wantErr: validators.ErrInvalidField},
		{name: "empty note update", call: func() error { _, err := notes.UpdateNote(ctx, 1, models.NoteUpdate{}); return err }, wantErr: validators.ErrNoFieldsToUpdate},
		{name: "task without start", call: func() error { _, err := tasks.CreateTask(ctx, models.TaskCreate{Title: "x"}); return err }, wantErr: validators.ErrInvalidField},
		{name: "empty task update", call: func() error { _, err := tasks.UpdateTask(ctx, 1, models.TaskUpdate{}); return err }, wantErr: validators.ErrNoFieldsToUpdate},
		{name: "credential without password", call: func() error {
			_, err := creds.CreateCredential(ctx, models.CredentialCreate{SiteName: "s", Username: "u"})
			return err
		}, wantErr: validators.ErrInvalidField},
		{name: "empty credential update", call: func() error { _, err := creds.UpdateCredential(ctx, 1, models.CredentialUpdate{}); return err }, wantErr: validators.ErrNoFieldsToUpdate},
		{name: "contact with bad email", call: func() error {
			_, err := contacts.UpdateContact(ctx, 1, models.ContactUpdate{Email: strPtr("nope")})
			return err
		}, wantErr: validators.ErrInvalidField},
		{name: "zero page limit", call: func() error { _, err := contacts.ListContacts(ctx, models.Page{}); return err }, wantErr: validators.ErrInvalidField},
		{name: "oversized page", call: func() error {
			_, err := creds.ListCredentials(ctx, models.Page{Limit: models.MaxPageLimit + 1})
			return err
		}, wantErr: validators.ErrInvalidField},
		{name: "oversized task page", call: func() error { _, err := tasks.ListTasks(ctx, models.Page{Limit: 0}); return err }, wantErr: validators.ErrInvalidField},
		{name: "oversized note page", call: func() error { _, err := notes.ListNotes(ctx, models.Page{Limit: 5000}); return err }, wantErr: validators.ErrInvalidField},
		{name: "skip past int64", call: func() error {
			_, err := creds.ListCredentials(ctx, models.Page{Skip: math.MaxUint64, Limit: 1})
			return err
		}, wantErr: validators.ErrInvalidField},
		{name: "count with bad direction", call: func() error {
			_, err := contacts.CountContacts(ctx, models.Page{Limit: 1, OrderDir: "sideways"})
			return err
		}, wantErr: validators.ErrInvalidField},
		{name: "count with skip past int64", call: func() error {
			_, err := tasks.CountTasks(ctx, models.Page{Skip: math.MaxUint64, Limit: 1})
			return err
		}, wantErr: validators.ErrInvalidField},
		{name: "count with zero limit", call: func() error { _, err := notes.CountNotes(ctx, models.Page{}); return err }, wantErr: validators.ErrInvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDataProvided))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
