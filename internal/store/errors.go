package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when a user with the same name is
	// already stored.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUnsupportedDSN is returned when the database DSN scheme is neither
	// PostgreSQL nor SQLite.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")

	// ErrUnsupportedFileBackend is returned for an unknown file backend name.
	ErrUnsupportedFileBackend = errors.New("unsupported file storage backend")

	// ErrIncompleteMinioConfig is returned when one of endpoint, access key,
	// secret key or bucket is missing.
	ErrIncompleteMinioConfig = errors.New("minio configuration incomplete")

	// ErrBucketNotFound is returned when the configured bucket does not exist.
	ErrBucketNotFound = errors.New("minio bucket does not exist")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan user rows")
)
