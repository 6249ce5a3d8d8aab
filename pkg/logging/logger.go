/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger.go
Description: Structured logging for runpattern built on logrus. Supports JSON, text and
custom formats, optional timestamped log files with retention, and helpers for the
events of an inference run.
*/

package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// LogLevel represents the logging level
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warn"
	LogLevelError   LogLevel = "error"
)

// LogFormat represents the logging format
type LogFormat string

const (
	LogFormatJSON   LogFormat = "json"
	LogFormatText   LogFormat = "text"
	LogFormatCustom LogFormat = "custom"
)

// Field names shared by the helpers and the formatters
const (
	FieldInferenceID = "inference_id"
	FieldPattern     = "pattern"
	FieldSample      = "sample"
	FieldSamples     = "samples"
	FieldDuration    = "duration"
	FieldMisses      = "misses"
)

const (
	msgInferred = "Pattern inferred"
	msgRejected = "Sample rejected"
	msgConflict = "Samples disagree on run kind"
	msgVerified = "Pattern verified"
	msgSkipped  = "Pattern verification skipped"

	logFilePrefix = "runpattern_"
)

// LoggerConfig holds the configuration for the logger
type LoggerConfig struct {
	Level     LogLevel  `json:"level" yaml:"level"`
	Format    LogFormat `json:"format" yaml:"format"`
	OutputDir string    `json:"output_dir" yaml:"output_dir"` // empty disables file output
	MaxFiles  int       `json:"max_files" yaml:"max_files"`
	Timestamp bool      `json:"timestamp" yaml:"timestamp"`
	Caller    bool      `json:"caller" yaml:"caller"`
	Colors    bool      `json:"colors" yaml:"colors"`

	// Output receives console logs, os.Stderr when nil
	Output io.Writer `json:"-" yaml:"-"`
}

// DefaultConfig returns the configuration used when none is given
func DefaultConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:     LogLevelInfo,
		Format:    LogFormatCustom,
		MaxFiles:  10,
		Timestamp: true,
		Colors:    true,
	}
}

// Validate checks the LoggerConfig for invalid values.
func (c *LoggerConfig) Validate() error {
	if c.OutputDir != "" && c.MaxFiles <= 0 {
		return fmt.Errorf("max_files must be positive")
	}
	switch c.Format {
	case LogFormatJSON, LogFormatText, LogFormatCustom:
	default:
		return fmt.Errorf("unsupported log format: %s", c.Format)
	}
	switch c.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
	default:
		return fmt.Errorf("unsupported log level: %s", c.Level)
	}
	return nil
}

// Logger wraps a logrus logger with inference-specific helpers
type Logger struct {
	config     *LoggerConfig
	logger     *logrus.Logger
	fileHandle *os.File
	filePath   string
	startTime  time.Time
}

// NewLogger creates a new logger instance
func NewLogger(config *LoggerConfig) (*Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger config: %w", err)
	}

	l := &Logger{
		config:    config,
		logger:    logrus.New(),
		startTime: time.Now(),
	}

	if err := l.setup(); err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return l, nil
}

// setup configures level, formatter and outputs
func (l *Logger) setup() error {
	level, err := logrus.ParseLevel(string(l.config.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.logger.SetLevel(level)
	l.logger.SetReportCaller(l.config.Caller)
	l.setFormatter()

	var out io.Writer = os.Stderr
	if l.config.Output != nil {
		out = l.config.Output
	}
	l.logger.SetOutput(out)

	return l.setupFileOutput(out)
}

// setFormatter configures the log formatter
func (l *Logger) setFormatter() {
	prettyCaller := func(f *runtime.Frame) (string, string) {
		return "", fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
	}

	switch l.config.Format {
	case LogFormatJSON:
		l.logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat:  time.RFC3339,
			DisableTimestamp: !l.config.Timestamp,
			CallerPrettyfier: prettyCaller,
		})
	case LogFormatText:
		l.logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    l.config.Timestamp,
			DisableTimestamp: !l.config.Timestamp,
			TimestampFormat:  time.RFC3339,
			DisableColors:    !l.config.Colors,
			CallerPrettyfier: prettyCaller,
		})
	default:
		l.logger.SetFormatter(&InferenceFormatter{CustomFormatter{
			Timestamp: l.config.Timestamp,
			Caller:    l.config.Caller,
			Colors:    l.config.Colors,
		}})
	}
}

// setupFileOutput tees logs into a timestamped file under OutputDir
func (l *Logger) setupFileOutput(console io.Writer) error {
	if l.config.OutputDir == "" {
		return nil
	}

	if err := os.MkdirAll(l.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	name := fmt.Sprintf("%s%s.log", logFilePrefix, l.startTime.Format("2006-01-02_15-04-05.000000"))
	path := filepath.Join(l.config.OutputDir, name)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	l.fileHandle = file
	l.filePath = path
	l.logger.SetOutput(io.MultiWriter(console, file))

	l.logger.WithFields(logrus.Fields{
		"log_file": path,
		"level":    l.config.Level,
		"format":   l.config.Format,
	}).Debug("Logging initialized")
	return nil
}

// cleanup removes the oldest log files beyond MaxFiles
func (l *Logger) cleanup() error {
	if l.config.OutputDir == "" {
		return nil
	}

	files, err := filepath.Glob(filepath.Join(l.config.OutputDir, logFilePrefix+"*.log"))
	if err != nil {
		return err
	}
	if len(files) <= l.config.MaxFiles {
		return nil
	}

	// names embed the start time, so lexical order is age order
	sort.Strings(files)
	for _, f := range files[:len(files)-l.config.MaxFiles] {
		if err := os.Remove(f); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// FilePath returns the current log file, empty when file output is disabled
func (l *Logger) FilePath() string {
	return l.filePath
}

// LogInference logs a successfully inferred pattern
func (l *Logger) LogInference(inferenceID string, samples int, pattern string, duration time.Duration) {
	l.logger.WithFields(logrus.Fields{
		FieldInferenceID: inferenceID,
		FieldSamples:     samples,
		FieldPattern:     pattern,
		FieldDuration:    duration,
	}).Info(msgInferred)
}

// LogRejectedSample logs a sample that failed validation
func (l *Logger) LogRejectedSample(sample string, err error) {
	l.logger.WithFields(logrus.Fields{
		FieldSample: sample,
		"error":     err,
	}).Warn(msgRejected)
}

// LogConflict logs a kind conflict between samples
func (l *Logger) LogConflict(err error) {
	l.logger.WithField("error", err).Warn(msgConflict)
}

// LogVerification logs the outcome of a round-trip check
func (l *Logger) LogVerification(pattern string, checked, misses int) {
	entry := l.logger.WithFields(logrus.Fields{
		FieldPattern: pattern,
		FieldSamples: checked,
		FieldMisses:  misses,
	})
	if misses > 0 {
		entry.Error(msgVerified)
		return
	}
	entry.Info(msgVerified)
}

// LogVerificationSkipped logs a pattern the regexp engine could not compile
func (l *Logger) LogVerificationSkipped(pattern string, err error) {
	l.logger.WithFields(logrus.Fields{
		FieldPattern: pattern,
		"error":      err,
	}).Warn(msgSkipped)
}

// Close closes the log file and prunes old ones
func (l *Logger) Close() error {
	var closeErr error
	if l.fileHandle != nil {
		l.logger.SetOutput(io.Discard)
		if err := l.fileHandle.Close(); err != nil {
			closeErr = fmt.Errorf("failed to close log file: %w", err)
		}
		l.fileHandle = nil
	}

	if err := l.cleanup(); err != nil {
		return errors.Join(closeErr, fmt.Errorf("failed to cleanup log files: %w", err))
	}
	return closeErr
}

// GetLogger returns the underlying logrus logger
func (l *Logger) GetLogger() *logrus.Logger {
	return l.logger
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Info(msg)
}

// Warning logs a warning message
func (l *Logger) Warning(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Error(msg)
}
