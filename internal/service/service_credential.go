package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/ai-one-api/internal/crypto"
	"github.com/MKhiriev/ai-one-api/internal/logger"
	"github.com/MKhiriev/ai-one-api/internal/store"
	"github.com/MKhiriev/ai-one-api/models"
)

// sealed field names used in logs
const (
	fieldPassword  = "password"
	fieldOtherInfo = "other_info"
)

type credentialService struct {
	credentialRepository store.CredentialRepository
	cipher               crypto.FieldCipher

	logger *logger.Logger
}

func NewCredentialService(credentialRepository store.CredentialRepository, cipher crypto.FieldCipher, logger *logger.Logger) CredentialService {
	return &credentialService{
		credentialRepository: credentialRepository,
		cipher:               cipher,
		logger:               logger,
	}
}

func (s *credentialService) CreateCredential(ctx context.Context, input models.CredentialCreate) (models.Credential, error) {
	passwordSealed, err := s.seal(ctx, fieldPassword, input.Password)
	if err != nil {
		return models.Credential{}, err
	}

	var otherInfoSealed *string
	if input.OtherInfo != nil && *input.OtherInfo != "" {
		token, err := s.seal(ctx, fieldOtherInfo, *input.OtherInfo)
		if err != nil {
			return models.Credential{}, err
		}
		otherInfoSealed = &token
	}

	return s.credentialRepository.Create(ctx, models.Credential{
		SiteName:        input.SiteName,
		Username:        input.Username,
		PasswordSealed:  passwordSealed,
		OtherInfoSealed: otherInfoSealed,
		Category:        input.Category,
	})
}

func (s *credentialService) GetCredential(ctx context.Context, id int64) (models.CredentialDetail, error) {
	credential, err := s.credentialRepository.Get(ctx, id)
	if err != nil {
		return models.CredentialDetail{}, err
	}

	return models.CredentialDetail{
		ID:        credential.ID,
		SiteName:  credential.SiteName,
		Username:  credential.Username,
		Password:  s.open(ctx, credential.ID, fieldPassword, &credential.PasswordSealed),
		OtherInfo: s.open(ctx, credential.ID, fieldOtherInfo, credential.OtherInfoSealed),
		Category:  credential.Category,
		CreatedAt: credential.CreatedAt,
		UpdatedAt: credential.UpdatedAt,
	}, nil
}

func (s *credentialService) ListCredentials(ctx context.Context, page models.Page) ([]models.Credential, error) {
	return s.credentialRepository.List(ctx, page)
}

func (s *credentialService) CountCredentials(ctx context.Context, page models.Page) (uint64, error) {
	return s.credentialRepository.Count(ctx, page)
}

// UpdateCredential seals only the secrets present in input. An empty
// other_info clears the stored token.
func (s *credentialService) UpdateCredential(ctx context.Context, id int64, input models.CredentialUpdate) (models.Credential, error) {
	patch := models.CredentialPatch{
		SiteName: input.SiteName,
		Username: input.Username,
		Category: input.Category,
	}

	if input.Password != nil {
		token, err := s.seal(ctx, fieldPassword, *input.Password)
		if err != nil {
			return models.Credential{}, err
		}
		patch.PasswordSealed = &token
	}

	if input.OtherInfo != nil {
		token, err := s.seal(ctx, fieldOtherInfo, *input.OtherInfo)
		if err != nil {
			return models.Credential{}, err
		}
		patch.OtherInfoSealed = &token
	}

	return s.credentialRepository.Update(ctx, id, patch)
}

func (s *credentialService) DeleteCredential(ctx context.Context, id int64) error {
	return s.credentialRepository.Delete(ctx, id)
}

func (s *credentialService) seal(ctx context.Context, field, plaintext string) (string, error) {
	token, err := s.cipher.Seal(plaintext)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "credentialService.seal").
			Str("field", field).
			Msg("failed to seal credential field")
		return "", fmt.Errorf("%w: %s: %w", ErrSealingSecret, field, err)
	}

	return token, nil
}

// open never fails: a token that cannot be opened degrades to the
// undecryptable state of that single field.
func (s *credentialService) open(ctx context.Context, id int64, field string, token *string) models.SecretValue {
	if token == nil || *token == "" {
		return models.AbsentSecret()
	}

	plaintext, err := s.cipher.Open(*token)
	if err != nil {
		event := logger.FromContext(ctx).Warn()
		if !errors.Is(err, crypto.ErrUndecryptable) {
			event = logger.FromContext(ctx).Error()
		}
		event.Err(err).
			Str("func", "credentialService.open").
			Int64("credential_id", id).
			Str("field", field).
			Msg("stored credential field cannot be opened")
		return models.UndecryptableSecret()
	}

	return models.OpenedSecret(plaintext)
}
