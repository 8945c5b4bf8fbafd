package types

import "context"

// ConflictMode selects the upsert behavior for author loading.
type ConflictMode string

const (
	// ConflictUpdate refreshes the variant, biography, and dynasty fields
	// of an existing row; id and is_top300 are left untouched.
	ConflictUpdate ConflictMode = "update"

	// ConflictIgnore keeps the existing row unchanged.
	ConflictIgnore ConflictMode = "ignore"
)

// RecordSink is the write side of the persistent store. The pipeline is the
// sole writer for the duration of a run.
type RecordSink interface {
	// UpsertAuthors persists authors one statement at a time, keyed on the
	// unique canonical name. Idempotent for a fixed input and mode.
	UpsertAuthors(ctx context.Context, authors []*Author, mode ConflictMode) (int, error)

	// InsertWorks persists one partition's records as a single multi-row
	// insert inside an explicit transaction: all rows commit or none do.
	// Insert-only; re-running duplicates rows by design.
	InsertWorks(ctx context.Context, works []*Work) (int, error)
}

// AuthorLookup resolves an author name to a stored author ID. A miss is not
// an error: ok is false and the caller records a null reference.
type AuthorLookup interface {
	Resolve(ctx context.Context, name string) (id string, ok bool, err error)
}
