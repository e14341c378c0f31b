package service

import (
	"context"

	"github.com/MKhiriev/ai-one-api/internal/logger"
	"github.com/MKhiriev/ai-one-api/internal/store"
	"github.com/MKhiriev/ai-one-api/models"
)

type noteService struct {
	noteRepository store.NoteRepository

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:            logger,
	}
}

func (s *noteService) CreateNote(ctx context.Context, input models.NoteCreate) (models.Note, error) {
	return s.noteRepository.Create(ctx, input)
}

func (s *noteService) GetNote(ctx context.Context, id int64) (models.Note, error) {
	return s.noteRepository.Get(ctx, id)
}

func (s *noteService) ListNotes(ctx context.Context, page models.Page) ([]models.Note, error) {
	return s.noteRepository.List(ctx, page)
}

func (s *noteService) CountNotes(ctx context.Context, page models.Page) (uint64, error) {
	return s.noteRepository.Count(ctx, page)
}

func (s *noteService) UpdateNote(ctx context.Context, id int64, input models.NoteUpdate) (models.Note, error) {
	return s.noteRepository.Update(ctx, id, input)
}

func (s *noteService) DeleteNote(ctx context.Context, id int64) error {
	return s.noteRepository.Delete(ctx, id)
}
