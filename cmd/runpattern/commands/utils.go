/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for runpattern commands. Provides configuration loading,
logging setup and sample collection from arguments, files, corpus directories or stdin.
*/

package commands

import (
	"fmt"
	"strings"

	"github.com/kleascm/runpattern/pkg/corpus"
	"github.com/kleascm/runpattern/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding configuration
const EnvPrefix = "RUNPATTERN"

// LoadConfig loads configuration from the config file and environment
func LoadConfig() error {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	return nil
}

// SetupLogging builds the logger from configuration. Logs go to the
// command's error stream so stdout only carries results.
func SetupLogging(cmd *cobra.Command) (*logging.Logger, error) {
	config := logging.DefaultConfig()
	config.Level = logging.LogLevel(viper.GetString("log_level"))
	config.Format = logging.LogFormat(viper.GetString("log_format"))
	config.OutputDir = viper.GetString("log_dir")
	config.Colors = viper.GetBool("log_colors")
	config.Output = cmd.ErrOrStderr()

	logger, err := logging.NewLogger(config)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}
	return logger, nil
}

// prepare loads configuration and logging, the common prologue of every command
func prepare(cmd *cobra.Command) (*logging.Logger, error) {
	if err := LoadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return SetupLogging(cmd)
}

// collectSamples gathers samples from args, --file and --corpus-dir, falling
// back to stdin when none of them is given
func collectSamples(cmd *cobra.Command, args []string, logger *logging.Logger) ([]string, error) {
	c := corpus.New()
	c.AddAll(args...)

	file := viper.GetString("file")
	if file != "" {
		if err := c.LoadFile(file); err != nil {
			return nil, err
		}
	}

	dir := viper.GetString("corpus_dir")
	if dir != "" {
		if err := c.LoadDir(dir); err != nil {
			return nil, err
		}
	}

	if len(args) == 0 && file == "" && dir == "" {
		if _, err := c.ReadFrom(cmd.InOrStdin()); err != nil {
			return nil, err
		}
	}

	logger.Debug("Samples collected", map[string]interface{}{
		logging.FieldSamples: c.Size(),
		"file":               file,
		"corpus_dir":         dir,
	})
	return c.Samples(), nil
}
