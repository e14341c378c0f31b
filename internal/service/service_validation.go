package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ai-one-api/internal/validators"
	"github.com/MKhiriev/ai-one-api/models"
)

// validate runs v over obj and marks any failure as invalid input.
func validate(ctx context.Context, v validators.Validator, obj any) error {
	if err := v.Validate(ctx, obj); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

type ContactValidationService struct {
	inner     ContactService
	validator validators.Validator
}

func NewContactValidationService(validator validators.Validator) ContactServiceWrapper {
	return &ContactValidationService{validator: validator}
}

func (v *ContactValidationService) Wrap(inner ContactService) ContactService {
	v.inner = inner
	return v
}

func (v *ContactValidationService) CreateContact(ctx context.Context, input models.ContactCreate) (models.Contact, error) {
	if err := validate(ctx, v.validator, input); err != nil {
		return models.Contact{}, err
	}
	return v.inner.CreateContact(ctx, input)
}

func (v *ContactValidationService) GetContact(ctx context.Context, id int64) (models.Contact, error) {
	return v.inner.GetContact(ctx, id)
}

func (v *ContactValidationService) ListContacts(ctx context.Context, page models.Page) ([]models.Contact, error) {
	if err := validate(ctx, v.validator, page); err != nil {
		return nil, err
	}
	return v.inner.ListContacts(ctx, page)
}

func (v *ContactValidationService) CountContacts(ctx context.Context, page models.Page) (uint64, error) {
	if err := validate(ctx, v.validator, page); err != nil {
		return 0, err
	}
	return v.inner.CountContacts(ctx, page)
}

func (v *ContactValidationService) UpdateContact(ctx context.Context, id int64, input models.ContactUpdate) (models.Contact, error) {
	if err := validate(ctx, v.validator, input); err != nil {
		return models.Contact{}, err
	}
	return v.inner.UpdateContact(ctx, id, input)
}

func (v *ContactValidationService) DeleteContact(ctx context.Context, id int64) error {
	return v.inner.DeleteContact(ctx, id)
}

type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService(validator validators.Validator) NoteServiceWrapper {
	return &NoteValidationService{validator: validator}
}

func (v *NoteValidationService) Wrap(inner NoteService) NoteService {
	v.inner = inner
	return v
}

func (v *NoteValidationService) CreateNote(ctx context.Context, input models.NoteCreate) (models.Note, error) {
	if err := validate(ctx, v.validator, input); err != nil {
		return models.Note{}, err
	}
	return v.inner.CreateNote(ctx, input)
}

func (v *NoteValidationService) GetNote(ctx context.Context, id int64) (models.Note, error) {
	return v.inner.GetNote(ctx, id)
}

func (v *NoteValidationService) ListNotes(ctx context.Context, page models.Page) ([]models.Note, error) {
	if err := validate(ctx, v.validator, page); err != nil {
		return nil, err
	}
	return v.inner.ListNotes(ctx, page)
}

func (v *NoteValidationService) CountNotes(ctx context.Context, page models.Page) (uint64, error) {
	if err := validate(ctx, v.validator, page); err != nil {
		return 0, err
	}
	return v.inner.CountNotes(ctx, page)
}

func (v *NoteValidationService) UpdateNote(ctx context.Context, id int64, input models.NoteUpdate) (models.Note, error) {
	if err := validate(ctx, v.validator, input); err != nil {
		return models.Note{}, err
	}
	return v.inner.UpdateNote(ctx, id, input)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, id int64) error {
	return v.inner.DeleteNote(ctx, id)
}

type CredentialValidationService struct {
	inner     CredentialService
	validator validators.Validator
}

func NewCredentialValidationService(validator validators.Validator) CredentialServiceWrapper {
	return &CredentialValidationService{validator: validator}
}

func (v *CredentialValidationService) Wrap(inner CredentialService) CredentialService {
	v.inner = inner
	return v
}

func (v *CredentialValidationService) CreateCredential(ctx context.Context, input models.CredentialCreate) (models.Credential, error) {
	if err := validate(ctx, v.validator, input); err != nil {
		return models.Credential{}, err
	}
	return v.inner.CreateCredential(ctx, input)
}

func (v *CredentialValidationService) GetCredential(ctx context.Context, id int64) (models.CredentialDetail, error) {
	return v.inner.GetCredential(ctx, id)
}

func (v *CredentialValidationService) ListCredentials(ctx context.Context, page models.Page) ([]models.Credential, error) {
	if err := validate(ctx, v.validator, page); err != nil {
		return nil, err
	}
	return v.inner.ListCredentials(ctx, page)
}

func (v *CredentialValidationService) CountCredentials(ctx context.Context, page models.Page) (uint64, error) {
	if err := validate(ctx, v.validator, page); err != nil {
		return 0, err
	}
	return v.inner.CountCredentials(ctx, page)
}

func (v *CredentialValidationService) UpdateCredential(ctx context.Context, id int64, input models.CredentialUpdate) (models.Credential, error) {
	if err := validate(ctx, v.validator, input); err != nil {
		return models.Credential{}, err
	}
	return v.inner.UpdateCredential(ctx, id, input)
}

func (v *CredentialValidationService) DeleteCredential(ctx context.Context, id int64) error {
	return v.inner.DeleteCredential(ctx, id)
}

type TaskValidationService struct {
	inner     TaskService
	validator validators.Validator
}

func NewTaskValidationService(validator validators.Validator) TaskServiceWrapper {
	return &TaskValidationService{validator: validator}
}

func (v *TaskValidationService) Wrap(inner TaskService) TaskService {
	v.inner = inner
	return v
}

func (v *TaskValidationService) CreateTask(ctx context.Context, input models.TaskCreate) (models.Task, error) {
	if err := validate(ctx, v.validator, input); err != nil {
		return models.Task{}, err
	}
	return v.inner.CreateTask(ctx, input)
}

func (v *TaskValidationService) GetTask(ctx context.Context, id int64) (models.Task, error) {
	return v.inner.GetTask(ctx, id)
}

func (v *TaskValidationService) ListTasks(ctx context.Context, page models.Page) ([]models.Task, error) {
	if err := validate(ctx, v.validator, page); err != nil {
		return nil, err
	}
	return v.inner.ListTasks(ctx, page)
}

func (v *TaskValidationService) CountTasks(ctx context.Context, page models.Page) (uint64, error) {
	if err := validate(ctx, v.validator, page); err != nil {
		return 0, err
	}
	return v.inner.CountTasks(ctx, page)
}

func (v *TaskValidationService) UpdateTask(ctx context.Context, id int64, input models.TaskUpdate) (models.Task, error) {
	if err := validate(ctx, v.validator, input); err != nil {
		return models.Task{}, err
	}
	return v.inner.UpdateTask(ctx, id, input)
}

func (v *TaskValidationService) DeleteTask(ctx context.Context, id int64) error {
	return v.inner.DeleteTask(ctx, id)
}
