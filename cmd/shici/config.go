// Config loading for the shici CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/digua-cn/shici/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	envPrefix      = "SHICI"

	cfgKeyCorpusDir = "corpus_dir"
	cfgKeyDataDir   = "data_dir"
	cfgKeyMarkBatch = "mark_batch"
	cfgKeyLogLevel  = "log_level"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# shici configuration

# Directory holding the chinese-poetry JSON files
corpus_dir: ./chinese-poetry

# Directory holding the SQLite database
data_dir: ./data

# Fan-out width for the top-300 marking pass
mark_batch: 10

# Logging level (debug, info, warn, error)
log_level: info
`

// loadConfig reads the config file using Viper. With no --config flag the
// default directory ~/.shici is used and a default config.yaml is written
// on first run. Environment variables (SHICI_CORPUS_DIR and friends) fill
// in for missing keys; a missing config file is not an error.
func loadConfig(path string) (types.Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyCorpusDir, "./chinese-poetry")
	v.SetDefault(cfgKeyDataDir, "./data")
	v.SetDefault(cfgKeyMarkBatch, types.DefaultMarkBatch)
	v.SetDefault(cfgKeyLogLevel, "info")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		dir, err := defaultConfigDir()
		if err != nil {
			return types.Config{}, err
		}
		if err := ensureDefaultConfigFile(dir); err != nil {
			return types.Config{}, fmt.Errorf("ensure default config: %w", err)
		}

		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return types.Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return types.Config{
		CorpusDir: v.GetString(cfgKeyCorpusDir),
		DataDir:   v.GetString(cfgKeyDataDir),
		MarkBatch: v.GetInt(cfgKeyMarkBatch),
		LogLevel:  v.GetString(cfgKeyLogLevel),
	}, nil
}

// defaultConfigDir resolves the per-user config directory.
func defaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".shici"), nil
}

// ensureDefaultConfigFile creates the config directory and a default
// config.yaml if they do not exist yet.
func ensureDefaultConfigFile(configDir string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	path := filepath.Join(configDir, configFileExt)
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
