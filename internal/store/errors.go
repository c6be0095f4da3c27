package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against
// these values.
var (
	// ErrQuestionnaireNotFound is returned when a queried questionnaire
	// does not exist.
	ErrQuestionnaireNotFound = errors.New("questionnaire was not found")

	// ErrLocalityNotFound is returned when a visit references a locality
	// id that is absent from the reference table.
	ErrLocalityNotFound = errors.New("locality was not found")

	// ErrUsageNotFound is returned when a (questionnaire, locality) usage
	// row does not exist.
	ErrUsageNotFound = errors.New("locality usage was not found")

	// ErrKeyNotFound is returned by the device local store when the
	// requested namespace/key pair is absent.
	ErrKeyNotFound = errors.New("key was not found in local store")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a read-only query
	// against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start
	// a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row into
	// a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
