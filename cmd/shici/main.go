// Package main provides the shici CLI.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/digua-cn/shici/internal/corpus"
	"github.com/digua-cn/shici/internal/pipeline"
	"github.com/digua-cn/shici/internal/store"
	"github.com/digua-cn/shici/pkg/types"
)

var (
	// configFile is set by the --config flag.
	configFile    string
	flagCorpusDir string
	flagDataDir   string
	flagVerbose   bool

	// Run state, initialized by PersistentPreRunE.
	cfg  types.Config
	st   *store.Store
	orch *pipeline.Orchestrator
	log  = logrus.NewEntry(logrus.StandardLogger())
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shici",
	Short: "shici ingests the chinese-poetry corpus into SQLite",
	Long: `shici loads the chinese-poetry JSON collection (Tang poems, Song poems,
Song lyrics, and author biographies) into a local SQLite database,
converting Traditional-script text to Simplified, resolving author
references, and flagging the Tang-300 anthology entries.`,
	PersistentPreRunE:  initPipeline,
	PersistentPostRunE: closePipeline,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ~/.shici/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagCorpusDir, "corpus-dir", "", "directory holding the corpus JSON files")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "directory holding the SQLite database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(loadAuthorsCmd)
	rootCmd.AddCommand(loadTangCmd)
	rootCmd.AddCommand(loadSongPoemsCmd)
	rootCmd.AddCommand(loadSongLyricsCmd)
	rootCmd.AddCommand(markTop300Cmd)
	rootCmd.AddCommand(statsCmd)
}

// initPipeline loads config, opens the store, and wires the orchestrator.
func initPipeline(cmd *cobra.Command, args []string) error {
	// Version needs no store.
	if cmd.Name() == "version" {
		return nil
	}

	var err error
	cfg, err = loadConfig(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	setupLogging(cfg)

	st, err = store.Open(cmd.Context(), cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	lookups := func(key types.JoinKey) types.AuthorLookup {
		return store.NewResolver(st, key)
	}
	orch = pipeline.New(corpus.NewSource(cfg.CorpusDir), st, lookups, st, log)
	return nil
}

// closePipeline releases the store.
func closePipeline(cmd *cobra.Command, args []string) error {
	if st != nil {
		return st.Close()
	}
	return nil
}

// applyFlags overlays explicit flags onto the loaded config. Flags take
// precedence over config file and environment values.
func applyFlags(cfg *types.Config) {
	if flagCorpusDir != "" {
		cfg.CorpusDir = flagCorpusDir
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
}

// setupLogging applies the configured level to the standard logger. The
// --verbose flag forces debug.
func setupLogging(cfg types.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	if flagVerbose {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
}
