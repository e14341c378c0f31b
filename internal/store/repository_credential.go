package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/ai-one-api/internal/logger"
	"github.com/MKhiriev/ai-one-api/models"
)

// credentialRepository is the SQL implementation of [CredentialRepository]
// over the "credentials" table.
//
// password_sealed and other_info_sealed hold tokens produced by the field
// cipher. The repository moves them as opaque strings and has no access to
// the key.
type credentialRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCredentialRepository constructs a [CredentialRepository] backed by db.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

func scanCredential(row rowScanner) (models.Credential, error) {
	var c models.Credential
	err := row.Scan(
		&c.ID,
		&c.SiteName,
		&c.Username,
		&c.PasswordSealed,
		&c.OtherInfoSealed,
		&c.Category,
		timeValue{&c.CreatedAt},
		nullTimeValue{&c.UpdatedAt},
	)
	return c, err
}

// Create inserts a credential whose secrets are already sealed.
// ID, CreatedAt and UpdatedAt of the argument are ignored.
func (r *credentialRepository) Create(ctx context.Context, credential models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildInsertQuery(
		models.Credential{}.TableName(),
		credentialColumns[1:len(credentialColumns)-1],
		[]any{
			credential.SiteName,
			credential.Username,
			credential.PasswordSealed,
			credential.OtherInfoSealed,
			credential.Category,
			r.db.now(),
		},
		credentialColumns,
	)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.Create").Msg("failed to build query")
		return models.Credential{}, err
	}

	created, err := scanCredential(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.Create").Msg("failed to insert credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// Get returns the stored credential with sealed fields untouched.
func (r *credentialRepository) Get(ctx context.Context, id int64) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildGetQuery(models.Credential{}.TableName(), credentialColumns, id)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.Get").Int64("id", id).Msg("failed to build query")
		return models.Credential{}, err
	}

	var credential models.Credential
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		credential, scanErr = scanCredential(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Credential{}, ErrCredentialNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.Get").Int64("id", id).Msg("failed to get credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return credential, nil
}

// List returns one page of stored credentials with the tokens as stored.
func (r *credentialRepository) List(ctx context.Context, page models.Page) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildListQuery(models.Credential{}.TableName(), credentialColumns, credentialListSpec, page)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.List").Msg("failed to build query")
		return nil, err
	}

	credentials, err := queryList(ctx, r.db, query, args, scanCredential)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.List").Msg("failed to list credentials")
		return nil, err
	}

	return credentials, nil
}

// Count returns the number of credentials matching the search term of page.
func (r *credentialRepository) Count(ctx context.Context, page models.Page) (uint64, error) {
	total, err := countRows(ctx, r.db, models.Credential{}.TableName(), credentialListSpec, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "credentialRepository.Count").
			Str("search", page.Search).
			Msg("failed to count credentials")
		return 0, err
	}

	return total, nil
}

// Update writes the non-nil fields of patch and returns the updated row.
func (r *credentialRepository) Update(ctx context.Context, id int64, patch models.CredentialPatch) (models.Credential, error) {
	log := logger.FromContext(ctx)

	clauses := make([]setClause, 0, 5)
	clauses = setIfPresent(clauses, "site_name", patch.SiteName)
	clauses = setIfPresent(clauses, "username", patch.Username)
	clauses = setIfPresent(clauses, "password_sealed", patch.PasswordSealed)
	clauses = setIfPresent(clauses, "other_info_sealed", patch.OtherInfoSealed)
	clauses = setIfPresent(clauses, "category", patch.Category)

	query, args, err := r.db.buildUpdateQuery(models.Credential{}.TableName(), id, clauses, credentialColumns)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.Update").Int64("id", id).Msg("failed to build query")
		return models.Credential{}, err
	}

	updated, err := scanCredential(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Credential{}, ErrCredentialNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.Update").Int64("id", id).Msg("failed to update credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

func (r *credentialRepository) Delete(ctx context.Context, id int64) error {
	err := deleteByID(ctx, r.db, models.Credential{}.TableName(), id, ErrCredentialNotFound)
	if err != nil && !errors.Is(err, ErrCredentialNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "credentialRepository.Delete").Int64("id", id).Msg("failed to delete credential")
	}
	return err
}
