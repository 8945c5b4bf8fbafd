package types

import "errors"

// Standard errors returned by pipeline components. Callers classify with
// errors.Is; wrapped variants carry call-site context.
var (
	// ErrMalformedRecord marks a raw record missing a required field.
	// Recovered locally: the record is skipped with a warning and the
	// partition continues.
	ErrMalformedRecord = errors.New("malformed corpus record")

	// ErrUnknownCorpus marks a corpus name with no registered descriptor.
	ErrUnknownCorpus = errors.New("unknown corpus")

	// ErrNoPartitions is returned when partition discovery finds no files
	// for a corpus in the corpus directory.
	ErrNoPartitions = errors.New("no partition files found")

	// ErrStoreClosed is returned by store operations after Close.
	ErrStoreClosed = errors.New("store is closed")
)

// Config validation errors.
var (
	ErrCorpusDirEmpty   = errors.New("corpus_dir must not be empty")
	ErrDataDirEmpty     = errors.New("data_dir must not be empty")
	ErrMarkBatchInvalid = errors.New("mark_batch must be positive")
)
