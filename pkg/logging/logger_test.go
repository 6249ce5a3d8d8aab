/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger_test.go
Description: Tests for the logging system: configuration validation, formats, file
output with retention, and the inference event helpers.
*/

package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kleascm/runpattern/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, format logging.LogFormat) (*logging.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.LogLevelDebug,
		Format: format,
		Output: &buf,
	})
	require.NoError(t, err)
	t.Cleanup(func() { logger.Close() })
	return logger, &buf
}

func TestLoggerConfigValidate(t *testing.T) {
	assert.NoError(t, logging.DefaultConfig().Validate())

	bad := logging.DefaultConfig()
	bad.Format = "xml"
	assert.Error(t, bad.Validate())

	bad = logging.DefaultConfig()
	bad.Level = "verbose"
	assert.Error(t, bad.Validate())

	bad = logging.DefaultConfig()
	bad.OutputDir = t.TempDir()
	bad.MaxFiles = 0
	assert.Error(t, bad.Validate())

	_, err := logging.NewLogger(bad)
	assert.Error(t, err)
}

func TestLoggerDefaultConfig(t *testing.T) {
	logger, err := logging.NewLogger(nil)
	require.NoError(t, err)
	defer logger.Close()

	assert.Equal(t, logrus.InfoLevel, logger.GetLogger().GetLevel())
	assert.Empty(t, logger.FilePath())
}

func TestLogInferenceJSON(t *testing.T) {
	logger, buf := newTestLogger(t, logging.LogFormatJSON)

	logger.LogInference("id-1", 3, `[A-Z]{2}\d{3}[A-Z]{2}`, 5*time.Millisecond)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Pattern inferred", entry["msg"])
	assert.Equal(t, "id-1", entry[logging.FieldInferenceID])
	assert.Equal(t, `[A-Z]{2}\d{3}[A-Z]{2}`, entry[logging.FieldPattern])
	assert.Equal(t, float64(3), entry[logging.FieldSamples])
}

func TestCustomFormatterTagsEvents(t *testing.T) {
	logger, buf := newTestLogger(t, logging.LogFormatCustom)

	logger.LogRejectedSample("ab12", errors.New("input set contains invalid char: a"))
	logger.LogVerification(`[A-Z]\d`, 4, 1)

	out := buf.String()
	assert.Contains(t, out, "WARNING [REJECT] Sample rejected")
	assert.Contains(t, out, "sample=ab12")
	assert.Contains(t, out, "ERROR [VERIFY] Pattern verified")
	assert.Contains(t, out, "misses=1 pattern=[A-Z]\\d samples=4")
	assert.NotContains(t, out, "\033[")
}

func TestCustomFormatterKeepsLongPatterns(t *testing.T) {
	logger, buf := newTestLogger(t, logging.LogFormatCustom)

	long := `[A-Z]{2}\d{3,5}[A-Z]{0,10}\d{0,3}[A-Z]{0,1}[A-Z]{2}\d{3,5}[A-Z]{0,10}`
	logger.Info("note", map[string]interface{}{logging.FieldPattern: long, "other": long})

	out := buf.String()
	assert.Contains(t, out, "pattern="+long)
	assert.Contains(t, out, "other="+long[:50]+"...")
}

func TestLoggerLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.LogLevelWarning,
		Format: logging.LogFormatText,
		Output: &buf,
	})
	require.NoError(t, err)
	defer logger.Close()

	logger.Debug("hidden debug", nil)
	logger.Info("hidden info", nil)
	logger.Warning("shown warning", nil)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown warning")
}

func TestLoggerFileOutputAndRetention(t *testing.T) {
	dir := t.TempDir()

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "runpattern_2000-01-0"+string(rune('1'+i))+"_00-00-00.000000.log"), nil, 0644))
	}

	var console bytes.Buffer
	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.LogLevelInfo,
		Format:    logging.LogFormatJSON,
		OutputDir: dir,
		MaxFiles:  2,
		Output:    &console,
	})
	require.NoError(t, err)

	logger.LogConflict(errors.New("run 1 is both digit and letter"))
	path := logger.FilePath()
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Samples disagree on run kind")
	assert.Contains(t, console.String(), "Samples disagree on run kind")

	files, err := filepath.Glob(filepath.Join(dir, "runpattern_*.log"))
	require.NoError(t, err)
	assert.Len(t, files, 2)
	assert.Contains(t, files, path)
}

func TestLoggerCloseTwice(t *testing.T) {
	dir := t.TempDir()
	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.LogLevelInfo,
		Format:    logging.LogFormatText,
		OutputDir: dir,
		MaxFiles:  5,
		Output:    &bytes.Buffer{},
	})
	require.NoError(t, err)

	require.NoError(t, logger.Close())
	assert.NoError(t, logger.Close())

	// writes after Close are dropped rather than hitting a closed file
	logger.LogConflict(errors.New("late event"))
	data, err := os.ReadFile(logger.FilePath())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "late event")
}

func TestLogVerificationSkipped(t *testing.T) {
	logger, buf := newTestLogger(t, logging.LogFormatCustom)
	logger.LogVerificationSkipped(`[A-Z]\d{1001}`, errors.New("invalid repeat count"))

	assert.Contains(t, buf.String(), "[VERIFY] Pattern verification skipped")
	assert.Contains(t, buf.String(), "invalid repeat count")
}
