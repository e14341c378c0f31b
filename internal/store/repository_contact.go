package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/ai-one-api/internal/logger"
	"github.com/MKhiriev/ai-one-api/models"
)

// contactRepository is the SQL implementation of [ContactRepository] over
// the "contacts" table.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database failures carry the request trace id.
type contactRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewContactRepository constructs a [ContactRepository] backed by db.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

func scanContact(row rowScanner) (models.Contact, error) {
	var c models.Contact
	err := row.Scan(
		&c.ID,
		&c.FullName,
		&c.Profession,
		&c.PhoneNumber,
		&c.Email,
		&c.Address,
		&c.Organization,
		&c.BirthDate,
		&c.Tags,
		&c.Notes,
		timeValue{&c.CreatedAt},
		nullTimeValue{&c.UpdatedAt},
	)
	return c, err
}

// Create inserts a contact and returns the stored row.
//
// A duplicate email is reported as [ErrContactEmailExists].
func (r *contactRepository) Create(ctx context.Context, contact models.ContactCreate) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildInsertQuery(
		models.Contact{}.TableName(),
		contactColumns[1:len(contactColumns)-1],
		[]any{
			contact.FullName,
			contact.Profession,
			contact.PhoneNumber,
			contact.Email,
			contact.Address,
			contact.Organization,
			contact.BirthDate,
			contact.Tags,
			contact.Notes,
			r.db.now(),
		},
		contactColumns,
	)
	if err != nil {
		log.Err(err).Str("func", "contactRepository.Create").Msg("failed to build query")
		return models.Contact{}, err
	}

	created, err := scanContact(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.Contact{}, ErrContactEmailExists
		}
		log.Err(err).Str("func", "contactRepository.Create").Msg("failed to insert contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// Get returns the contact with the given id or [ErrContactNotFound].
func (r *contactRepository) Get(ctx context.Context, id int64) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildGetQuery(models.Contact{}.TableName(), contactColumns, id)
	if err != nil {
		log.Err(err).Str("func", "contactRepository.Get").Int64("id", id).Msg("failed to build query")
		return models.Contact{}, err
	}

	var contact models.Contact
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		contact, scanErr = scanContact(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, ErrContactNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "contactRepository.Get").Int64("id", id).Msg("failed to get contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return contact, nil
}

// List returns one page of contacts filtered and ordered as page asks.
func (r *contactRepository) List(ctx context.Context, page models.Page) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildListQuery(models.Contact{}.TableName(), contactColumns, contactListSpec, page)
	if err != nil {
		log.Err(err).Str("func", "contactRepository.List").Msg("failed to build query")
		return nil, err
	}

	contacts, err := queryList(ctx, r.db, query, args, scanContact)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.List").
			Uint64("skip", page.Skip).
			Uint64("limit", page.Limit).
			Msg("failed to list contacts")
		return nil, err
	}

	return contacts, nil
}

// Count returns the number of contacts matching the search term of page.
func (r *contactRepository) Count(ctx context.Context, page models.Page) (uint64, error) {
	total, err := countRows(ctx, r.db, models.Contact{}.TableName(), contactListSpec, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "contactRepository.Count").
			Str("search", page.Search).
			Msg("failed to count contacts")
		return 0, err
	}

	return total, nil
}

// Update writes the non-nil fields of patch and returns the updated row.
func (r *contactRepository) Update(ctx context.Context, id int64, patch models.ContactUpdate) (models.Contact, error) {
	log := logger.FromContext(ctx)

	clauses := make([]setClause, 0, 9)
	clauses = setIfPresent(clauses, "full_name", patch.FullName)
	clauses = setIfPresent(clauses, "profession", patch.Profession)
	clauses = setIfPresent(clauses, "phone_number", patch.PhoneNumber)
	clauses = setIfPresent(clauses, "email", patch.Email)
	clauses = setIfPresent(clauses, "address", patch.Address)
	clauses = setIfPresent(clauses, "organization", patch.Organization)
	clauses = setIfPresent(clauses, "birth_date", patch.BirthDate)
	clauses = setIfPresent(clauses, "tags", patch.Tags)
	clauses = setIfPresent(clauses, "notes", patch.Notes)

	query, args, err := r.db.buildUpdateQuery(models.Contact{}.TableName(), id, clauses, contactColumns)
	if err != nil {
		log.Err(err).Str("func", "contactRepository.Update").Int64("id", id).Msg("failed to build query")
		return models.Contact{}, err
	}

	updated, err := scanContact(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Contact{}, ErrContactNotFound
	case r.db.errorClassificator.IsUniqueViolation(err):
		return models.Contact{}, ErrContactEmailExists
	default:
		log.Err(err).Str("func", "contactRepository.Update").Int64("id", id).Msg("failed to update contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// Delete removes the contact with the given id or returns
// [ErrContactNotFound].
func (r *contactRepository) Delete(ctx context.Context, id int64) error {
	err := deleteByID(ctx, r.db, models.Contact{}.TableName(), id, ErrContactNotFound)
	if err != nil && !errors.Is(err, ErrContactNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "contactRepository.Delete").Int64("id", id).Msg("failed to delete contact")
	}
	return err
}
