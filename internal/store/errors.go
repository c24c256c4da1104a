package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a query expected to match a row
	// produces an empty result set.
	ErrNotFound = errors.New("record not found")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the version supplied by the caller does not match the stored version.
	ErrVersionConflict = errors.New("record version conflict occurred")

	// ErrUsernameAlreadyExists is returned on a unique violation of users.username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	ErrCategoryNameExists = errors.New("category name already exists")
	ErrCategoryCodeExists = errors.New("category code already exists")

	// ErrReturningRequestExists is returned when an assignment already has
	// a returning request.
	ErrReturningRequestExists = errors.New("returning request already exists")

	// ErrReferenceViolation is returned when a row references a missing
	// location, category, asset or user.
	ErrReferenceViolation = errors.New("referenced record does not exist")

	// ErrInvalidSortField is returned when a page request orders by a
	// field that is not sortable.
	ErrInvalidSortField = errors.New("invalid sort field")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
