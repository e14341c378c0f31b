//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/ai-one-api/models"
)

// ErrorClassificator inspects driver errors of one SQL dialect.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique constraint violation.
	IsUniqueViolation(err error) bool
}

// ContactRepository persists [models.Contact] records.
type ContactRepository interface {
	Create(ctx context.Context, contact models.ContactCreate) (models.Contact, error)
	Get(ctx context.Context, id int64) (models.Contact, error)
	List(ctx context.Context, page models.Page) ([]models.Contact, error)
	Count(ctx context.Context, page models.Page) (uint64, error)
	Update(ctx context.Context, id int64, patch models.ContactUpdate) (models.Contact, error)
	Delete(ctx context.Context, id int64) error
}

// NoteRepository persists [models.Note] records.
type NoteRepository interface {
	Create(ctx context.Context, note models.NoteCreate) (models.Note, error)
	Get(ctx context.Context, id int64) (models.Note, error)
	List(ctx context.Context, page models.Page) ([]models.Note, error)
	Count(ctx context.Context, page models.Page) (uint64, error)
	Update(ctx context.Context, id int64, patch models.NoteUpdate) (models.Note, error)
	Delete(ctx context.Context, id int64) error
}

// CredentialRepository persists [models.Credential] records. Sealed fields
// are stored and returned verbatim; the repository never opens them.
type CredentialRepository interface {
	Create(ctx context.Context, credential models.Credential) (models.Credential, error)
	Get(ctx context.Context, id int64) (models.Credential, error)
	List(ctx context.Context, page models.Page) ([]models.Credential, error)
	Count(ctx context.Context, page models.Page) (uint64, error)
	Update(ctx context.Context, id int64, patch models.CredentialPatch) (models.Credential, error)
	Delete(ctx context.Context, id int64) error
}

// TaskRepository persists [models.Task] records.
type TaskRepository interface {
	Create(ctx context.Context, task models.TaskCreate) (models.Task, error)
	Get(ctx context.Context, id int64) (models.Task, error)
	List(ctx context.Context, page models.Page) ([]models.Task, error)
	Count(ctx context.Context, page models.Page) (uint64, error)
	Update(ctx context.Context, id int64, patch models.TaskUpdate) (models.Task, error)
	Delete(ctx context.Context, id int64) error
}
