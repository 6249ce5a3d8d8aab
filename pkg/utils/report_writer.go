/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report_writer.go
Description: Encodes inference results as JSON or YAML and writes timestamped report
files, creating the report directory as needed.
*/

package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Encoding formats supported for reports
const (
	EncodingJSON = "json"
	EncodingYAML = "yaml"
)

// Encode writes v to w in the given encoding
func Encode(w io.Writer, encoding string, v interface{}) error {
	switch encoding {
	case EncodingJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case EncodingYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported encoding: %s", encoding)
	}
}

// WriteReport writes a result under dir/kind with a timestamped name, e.g.
// reports/infer/2024-06-11_01-30-00_infer.yaml. Returns the file path.
func WriteReport(dir, kind, encoding string, result interface{}) (string, error) {
	reportDir := filepath.Join(dir, kind)
	if err := os.MkdirAll(reportDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, encoding, result); err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filePath := filepath.Join(reportDir, fmt.Sprintf("%s_%s.%s", timestamp, kind, encoding))
	if err := os.WriteFile(filePath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}
	return filePath, nil
}
