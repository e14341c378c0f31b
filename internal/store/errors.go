package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrContactNotFound is returned when a query or update targets a contact
	// id that does not exist.
	ErrContactNotFound = errors.New("contact was not found")

	// ErrContactEmailExists is returned when a contact is created or updated
	// with an email that another contact already uses.
	ErrContactEmailExists = errors.New("contact with this email already exists")

	// ErrNoteNotFound is returned when a query or update targets a note id
	// that does not exist.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrCredentialNotFound is returned when a query or update targets a
	// credential id that does not exist.
	ErrCredentialNotFound = errors.New("credential was not found")

	// ErrTaskNotFound is returned when a query or update targets a task id
	// that does not exist.
	ErrTaskNotFound = errors.New("task was not found")

	// ErrInvalidSortColumn is returned when a list request orders by a
	// column the record kind cannot be sorted by.
	ErrInvalidSortColumn = errors.New("records cannot be sorted by this column")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
