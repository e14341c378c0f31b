package service

import (
	"fmt"

	"github.com/MKhiriev/ai-one-api/internal/config"
	"github.com/MKhiriev/ai-one-api/internal/crypto"
	"github.com/MKhiriev/ai-one-api/internal/logger"
	"github.com/MKhiriev/ai-one-api/internal/store"
	"github.com/MKhiriev/ai-one-api/internal/validators"
)

type Services struct {
	ContactService    ContactService
	NoteService       NoteService
	CredentialService CredentialService
	TaskService       TaskService
	AppInfoService    AppInfoService
}

// NewServices builds every service over storages. Record services are
// wrapped with input validation.
func NewServices(storages *store.Storages, cipher crypto.FieldCipher, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewRecordValidator()

	return &Services{
		ContactService: NewContactValidationService(validator).
			Wrap(NewContactService(storages.ContactRepository, logger)),
		NoteService: NewNoteValidationService(validator).
			Wrap(NewNoteService(storages.NoteRepository, logger)),
		CredentialService: NewCredentialValidationService(validator).
			Wrap(NewCredentialService(storages.CredentialRepository, cipher, logger)),
		TaskService: NewTaskValidationService(validator).
			Wrap(NewTaskService(storages.TaskRepository, logger)),
		AppInfoService: appInfoService,
	}, nil
}
