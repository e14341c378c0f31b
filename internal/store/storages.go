package store

import "github.com/MKhiriev/ai-one-api/internal/logger"

// Storages groups the repositories of every record kind.
type Storages struct {
	ContactRepository    ContactRepository
	NoteRepository       NoteRepository
	CredentialRepository CredentialRepository
	TaskRepository       TaskRepository
}

// NewStorages builds all repositories over db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating storages")

	return &Storages{
		ContactRepository:    NewContactRepository(db, logger),
		NoteRepository:       NewNoteRepository(db, logger),
		CredentialRepository: NewCredentialRepository(db, logger),
		TaskRepository:       NewTaskRepository(db, logger),
	}
}
