package types

// Config holds the directories and tuning parameters for an ingestion run.
type Config struct {
	// CorpusDir is the directory holding the corpus JSON files
	// (poet.tang.*.json, authors.tang.json, and so on).
	CorpusDir string `json:"corpus_dir" yaml:"corpus_dir"`

	// DataDir is the directory holding the SQLite database file.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// MarkBatch is the fan-out width for the top-300 marking pass.
	MarkBatch int `json:"mark_batch" yaml:"mark_batch"`

	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// DefaultMarkBatch bounds concurrent point updates during top-300 marking.
const DefaultMarkBatch = 10

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.CorpusDir == "" {
		return ErrCorpusDirEmpty
	}
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	if c.MarkBatch <= 0 {
		return ErrMarkBatchInvalid
	}
	return nil
}
