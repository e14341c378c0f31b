package service

import (
	"context"

	"github.com/MKhiriev/ai-one-api/models"
)

type ContactService interface {
	CreateContact(ctx context.Context, input models.ContactCreate) (models.Contact, error)
	GetContact(ctx context.Context, id int64) (models.Contact, error)
	ListContacts(ctx context.Context, page models.Page) ([]models.Contact, error)
	CountContacts(ctx context.Context, page models.Page) (uint64, error)
	UpdateContact(ctx context.Context, id int64, input models.ContactUpdate) (models.Contact, error)
	DeleteContact(ctx context.Context, id int64) error
}

type NoteService interface {
	CreateNote(ctx context.Context, input models.NoteCreate) (models.Note, error)
	GetNote(ctx context.Context, id int64) (models.Note, error)
	ListNotes(ctx context.Context, page models.Page) ([]models.Note, error)
	CountNotes(ctx context.Context, page models.Page) (uint64, error)
	UpdateNote(ctx context.Context, id int64, input models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, id int64) error
}

// CredentialService seals credential secrets on the way in and opens them
// for the single-record view. Listing returns the sealed tokens untouched.
type CredentialService interface {
	CreateCredential(ctx context.Context, input models.CredentialCreate) (models.Credential, error)
	GetCredential(ctx context.Context, id int64) (models.CredentialDetail, error)
	ListCredentials(ctx context.Context, page models.Page) ([]models.Credential, error)
	CountCredentials(ctx context.Context, page models.Page) (uint64, error)
	UpdateCredential(ctx context.Context, id int64, input models.CredentialUpdate) (models.Credential, error)
	DeleteCredential(ctx context.Context, id int64) error
}

type TaskService interface {
	CreateTask(ctx context.Context, input models.TaskCreate) (models.Task, error)
	GetTask(ctx context.Context, id int64) (models.Task, error)
	ListTasks(ctx context.Context, page models.Page) ([]models.Task, error)
	CountTasks(ctx context.Context, page models.Page) (uint64, error)
	UpdateTask(ctx context.Context, id int64, input models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ContactServiceWrapper defines middleware composition for ContactService.
// Implementations wrap an existing ContactService to add behavior such as
// logging or validating.
type ContactServiceWrapper interface {
	Wrap(ContactService) ContactService
}

// NoteServiceWrapper defines middleware composition for NoteService.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}

// CredentialServiceWrapper defines middleware composition for CredentialService.
type CredentialServiceWrapper interface {
	Wrap(CredentialService) CredentialService
}

// TaskServiceWrapper defines middleware composition for TaskService.
type TaskServiceWrapper interface {
	Wrap(TaskService) TaskService
}
