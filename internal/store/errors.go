package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrProductNotFound is returned when no published, non-deleted product
	// has the requested id.
	ErrProductNotFound = errors.New("product was not found")

	// ErrUnknownField is returned when a projection or ordering names an
	// attribute that is not a column of the products table.
	ErrUnknownField = errors.New("unknown product field")

	// ErrUnknownRelation is returned when a relation path has no loader.
	ErrUnknownRelation = errors.New("unknown product relation")

	// ErrPublishableKeyNotFound is returned when no publishable API key has
	// the given id.
	ErrPublishableKeyNotFound = errors.New("publishable api key was not found")

	// ErrPublishableKeyRevoked is returned for keys with a revocation date.
	ErrPublishableKeyRevoked = errors.New("publishable api key is revoked")

	// ErrCacheMiss is returned by cache lookups when the key is absent.
	ErrCacheMiss = errors.New("cache miss")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrCacheUnavailable wraps Redis failures. The cache is best-effort, so
	// callers log it and fall through to the database.
	ErrCacheUnavailable = errors.New("cache unavailable")
)
