package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/ai-one-api/internal/logger"
	"github.com/MKhiriev/ai-one-api/models"
)

// taskRepository is the SQL implementation of [TaskRepository].
type taskRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

func scanTask(row rowScanner) (models.Task, error) {
	var t models.Task
	err := row.Scan(
		&t.ID,
		&t.Title,
		timeValue{&t.StartsAt},
		nullTimeValue{&t.EndsAt},
		&t.Description,
		&t.Priority,
		&t.Status,
		timeValue{&t.CreatedAt},
		nullTimeValue{&t.UpdatedAt},
	)
	return t, err
}

// Create inserts a task. A task without a status is stored as
// [models.DefaultTaskStatus].
func (r *taskRepository) Create(ctx context.Context, task models.TaskCreate) (models.Task, error) {
	log := logger.FromContext(ctx)

	status := models.DefaultTaskStatus
	if task.Status != nil {
		status = *task.Status
	}

	query, args, err := r.db.buildInsertQuery(
		models.Task{}.TableName(),
		taskColumns[1:len(taskColumns)-1],
		[]any{
			task.Title,
			task.StartsAt,
			task.EndsAt,
			task.Description,
			task.Priority,
			status,
			r.db.now(),
		},
		taskColumns,
	)
	if err != nil {
		log.Err(err).Str("func", "taskRepository.Create").Msg("failed to build query")
		return models.Task{}, err
	}

	created, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "taskRepository.Create").Msg("failed to insert task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *taskRepository) Get(ctx context.Context, id int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildGetQuery(models.Task{}.TableName(), taskColumns, id)
	if err != nil {
		log.Err(err).Str("func", "taskRepository.Get").Int64("id", id).Msg("failed to build query")
		return models.Task{}, err
	}

	var task models.Task
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		task, scanErr = scanTask(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "taskRepository.Get").Int64("id", id).Msg("failed to get task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return task, nil
}

func (r *taskRepository) List(ctx context.Context, page models.Page) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildListQuery(models.Task{}.TableName(), taskColumns, taskListSpec, page)
	if err != nil {
		log.Err(err).Str("func", "taskRepository.List").Msg("failed to build query")
		return nil, err
	}

	tasks, err := queryList(ctx, r.db, query, args, scanTask)
	if err != nil {
		log.Err(err).Str("func", "taskRepository.List").Msg("failed to list tasks")
		return nil, err
	}

	return tasks, nil
}

// Count returns the number of tasks matching the search term of page.
func (r *taskRepository) Count(ctx context.Context, page models.Page) (uint64, error) {
	total, err := countRows(ctx, r.db, models.Task{}.TableName(), taskListSpec, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "taskRepository.Count").
			Str("search", page.Search).
			Msg("failed to count tasks")
		return 0, err
	}

	return total, nil
}

func (r *taskRepository) Update(ctx context.Context, id int64, patch models.TaskUpdate) (models.Task, error) {
	log := logger.FromContext(ctx)

	clauses := make([]setClause, 0, 6)
	clauses = setIfPresent(clauses, "title", patch.Title)
	clauses = setIfPresent(clauses, "starts_at", patch.StartsAt)
	clauses = setIfPresent(clauses, "ends_at", patch.EndsAt)
	clauses = setIfPresent(clauses, "description", patch.Description)
	clauses = setIfPresent(clauses, "priority", patch.Priority)
	clauses = setIfPresent(clauses, "status", patch.Status)

	query, args, err := r.db.buildUpdateQuery(models.Task{}.TableName(), id, clauses, taskColumns)
	if err != nil {
		log.Err(err).Str("func", "taskRepository.Update").Int64("id", id).Msg("failed to build query")
		return models.Task{}, err
	}

	updated, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "taskRepository.Update").Int64("id", id).Msg("failed to update task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	err := deleteByID(ctx, r.db, models.Task{}.TableName(), id, ErrTaskNotFound)
	if err != nil && !errors.Is(err, ErrTaskNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "taskRepository.Delete").Int64("id", id).Msg("failed to delete task")
	}
	return err
}
