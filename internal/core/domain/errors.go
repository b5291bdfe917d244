package domain

import (
	"errors"
	"fmt"
	"time"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidQuery is the parent of all caller-side query errors.
	// errors.Is matches it through ErrEmptyQuery and friends.
	ErrInvalidQuery = errors.New("invalid search query")

	// ErrEmptyQuery indicates the query text is empty or whitespace.
	ErrEmptyQuery = fmt.Errorf("%w: empty query", ErrInvalidQuery)

	// ErrQueryTooShort indicates the trimmed query is below MinQueryLength.
	ErrQueryTooShort = fmt.Errorf("%w: query too short", ErrInvalidQuery)

	// ErrInvalidPagination indicates a negative offset or non-positive limit.
	ErrInvalidPagination = fmt.Errorf("%w: invalid pagination", ErrInvalidQuery)

	// ErrInvalidFilter indicates an unknown result type in the filters.
	ErrInvalidFilter = fmt.Errorf("%w: invalid filter", ErrInvalidQuery)

	// ErrIndexNotInitialized indicates search was attempted before the
	// indexes were created. Recoverable only via initialization or rebuild.
	ErrIndexNotInitialized = errors.New("search index not initialized")

	// ErrIndexCorrupted indicates the index structure is damaged.
	// Recoverable only via an explicit rebuild.
	ErrIndexCorrupted = errors.New("search index corrupted")

	// ErrIndexCreationFailed indicates index DDL failed. Search is
	// unusable until the store is repaired.
	ErrIndexCreationFailed = errors.New("search index creation failed")

	// ErrOptimizationFailed indicates index compaction failed.
	// Non-fatal: correctness is unaffected, only performance.
	ErrOptimizationFailed = errors.New("search index optimization failed")
)

// TimeoutError is returned when the whole search pipeline exceeds its
// deadline. Partial results from faster sources are discarded.
type TimeoutError struct {
	// Query is the original query text.
	Query string

	// Timeout is the configured limit that expired.
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("search timed out after %s for query %q", e.Timeout, e.Query)
}

// DatabaseError wraps a failure raised by the underlying store during a
// query or DDL operation.
type DatabaseError struct {
	// Op names the operation that failed, e.g. "search content".
	Op string

	// Err is the store's error.
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("search database failure during %s: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// UnavailableError is returned when search is temporarily or permanently
// unusable, e.g. during a rebuild. Temporary tells callers whether a
// retry can succeed.
type UnavailableError struct {
	Reason    string
	Temporary bool
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("search unavailable: %s", e.Reason)
}
