package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/ai-one-api/internal/config"
	"github.com/MKhiriev/ai-one-api/internal/logger"
	"github.com/MKhiriev/ai-one-api/internal/mock"
	"github.com/MKhiriev/ai-one-api/internal/store"
)

func testStorages(ctrl *gomock.Controller) *store.Storages {
	return &store.Storages{
		ContactRepository:    mock.NewMockContactRepository(ctrl),
		NoteRepository:       mock.NewMockNoteRepository(ctrl),
		CredentialRepository: mock.NewMockCredentialRepository(ctrl),
		TaskRepository:       mock.NewMockTaskRepository(ctrl),
	}
}

func TestNewServices_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := config.StructuredConfig{App: config.App{Version: "1.0.0"}}

	services, err := NewServices(testStorages(ctrl), mock.NewMockFieldCipher(ctrl), cfg, logger.Nop())

	require.NoError(t, err)
	assert.IsType(t, &ContactValidationService{}, services.ContactService)
	assert.IsType(t, &NoteValidationService{}, services.NoteService)
	assert.IsType(t, &CredentialValidationService{}, services.CredentialService)
	assert.IsType(t, &TaskValidationService{}, services.TaskService)
	assert.NotNil(t, services.AppInfoService)
}

func TestNewServices_MissingVersion(t *testing.T) {
	ctrl := gomock.NewController(t)

	services, err := NewServices(testStorages(ctrl), mock.NewMockFieldCipher(ctrl), config.StructuredConfig{}, logger.Nop())

	assert.Nil(t, services)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
