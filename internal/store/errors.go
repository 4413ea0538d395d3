package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrItemNotFound is returned when a query or update targets an item id
	// that does not exist in the items table.
	ErrItemNotFound = errors.New("item was not found")

	// ErrItemAlreadyExists is returned when an INSERT or UPDATE violates the
	// unique constraint on items.name.
	ErrItemAlreadyExists = errors.New("item with this name already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods and the unit of work when a SQL-level operation fails
// before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrAcquiringConnection is returned when no connection can be taken from
	// the pool for a session.
	ErrAcquiringConnection = errors.New("failed to acquire connection")

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
	ErrScanningRow = errors.New("failed to scan item row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan item rows")

	// ErrPreparingDBPath is returned when the directory of the database file
	// cannot be created.
	ErrPreparingDBPath = errors.New("failed to prepare database path")
)
