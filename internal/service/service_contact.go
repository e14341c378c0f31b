package service

import (
	"context"

	"github.com/MKhiriev/ai-one-api/internal/logger"
	"github.com/MKhiriev/ai-one-api/internal/store"
	"github.com/MKhiriev/ai-one-api/models"
)

type contactService struct {
	contactRepository store.ContactRepository

	logger *logger.Logger
}

func NewContactService(contactRepository store.ContactRepository, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		logger:            logger,
	}
}

func (s *contactService) CreateContact(ctx context.Context, input models.ContactCreate) (models.Contact, error) {
	return s.contactRepository.Create(ctx, input)
}

func (s *contactService) GetContact(ctx context.Context, id int64) (models.Contact, error) {
	return s.contactRepository.Get(ctx, id)
}

func (s *contactService) ListContacts(ctx context.Context, page models.Page) ([]models.Contact, error) {
	return s.contactRepository.List(ctx, page)
}

func (s *contactService) CountContacts(ctx context.Context, page models.Page) (uint64, error) {
	return s.contactRepository.Count(ctx, page)
}

func (s *contactService) UpdateContact(ctx context.Context, id int64, input models.ContactUpdate) (models.Contact, error) {
	return s.contactRepository.Update(ctx, id, input)
}

func (s *contactService) DeleteContact(ctx context.Context, id int64) error {
	return s.contactRepository.Delete(ctx, id)
}
