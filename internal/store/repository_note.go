package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/ai-one-api/internal/logger"
	"github.com/MKhiriev/ai-one-api/models"
)

// noteRepository is the SQL implementation of [NoteRepository].
type noteRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

func scanNote(row rowScanner) (models.Note, error) {
	var n models.Note
	err := row.Scan(
		&n.ID,
		&n.Title,
		&n.Subtitle,
		&n.Content,
		&n.Folders,
		&n.Tags,
		timeValue{&n.CreatedAt},
		nullTimeValue{&n.UpdatedAt},
	)
	return n, err
}

func (r *noteRepository) Create(ctx context.Context, note models.NoteCreate) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildInsertQuery(
		models.Note{}.TableName(),
		noteColumns[1:len(noteColumns)-1],
		[]any{note.Title, note.Subtitle, note.Content, note.Folders, note.Tags, r.db.now()},
		noteColumns,
	)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Create").Msg("failed to build query")
		return models.Note{}, err
	}

	created, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Create").Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *noteRepository) Get(ctx context.Context, id int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildGetQuery(models.Note{}.TableName(), noteColumns, id)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Get").Int64("id", id).Msg("failed to build query")
		return models.Note{}, err
	}

	var note models.Note
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		note, scanErr = scanNote(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Get").Int64("id", id).Msg("failed to get note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

func (r *noteRepository) List(ctx context.Context, page models.Page) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildListQuery(models.Note{}.TableName(), noteColumns, noteListSpec, page)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.List").Msg("failed to build query")
		return nil, err
	}

	notes, err := queryList(ctx, r.db, query, args, scanNote)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.List").Msg("failed to list notes")
		return nil, err
	}

	return notes, nil
}

// Count returns the number of notes matching the search term of page.
func (r *noteRepository) Count(ctx context.Context, page models.Page) (uint64, error) {
	total, err := countRows(ctx, r.db, models.Note{}.TableName(), noteListSpec, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "noteRepository.Count").
			Str("search", page.Search).
			Msg("failed to count notes")
		return 0, err
	}

	return total, nil
}

func (r *noteRepository) Update(ctx context.Context, id int64, patch models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	clauses := make([]setClause, 0, 5)
	clauses = setIfPresent(clauses, "title", patch.Title)
	clauses = setIfPresent(clauses, "subtitle", patch.Subtitle)
	clauses = setIfPresent(clauses, "content", patch.Content)
	clauses = setIfPresent(clauses, "folders", patch.Folders)
	clauses = setIfPresent(clauses, "tags", patch.Tags)

	query, args, err := r.db.buildUpdateQuery(models.Note{}.TableName(), id, clauses, noteColumns)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Update").Int64("id", id).Msg("failed to build query")
		return models.Note{}, err
	}

	updated, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Update").Int64("id", id).Msg("failed to update note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

func (r *noteRepository) Delete(ctx context.Context, id int64) error {
	err := deleteByID(ctx, r.db, models.Note{}.TableName(), id, ErrNoteNotFound)
	if err != nil && !errors.Is(err, ErrNoteNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "noteRepository.Delete").Int64("id", id).Msg("failed to delete note")
	}
	return err
}
