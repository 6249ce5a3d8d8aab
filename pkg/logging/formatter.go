/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: formatter.go
Description: Log formatters for runpattern. CustomFormatter prints a compact line with
optional colors and sorted fields; InferenceFormatter adds a tag per inference event.
*/

package logging

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	colorReset   = "\033[0m"
	colorRed     = 31
	colorGreen   = 32
	colorYellow  = 33
	colorBlue    = 34
	colorMagenta = 35
	colorCyan    = 36
	colorWhite   = 37
)

// CustomFormatter writes one line per entry: time, level, caller, message, fields
type CustomFormatter struct {
	Timestamp bool
	Caller    bool
	Colors    bool
}

// Format implements logrus.Formatter
func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	return f.format(entry, ""), nil
}

func (f *CustomFormatter) format(entry *logrus.Entry, tag string) []byte {
	var out strings.Builder

	if f.Timestamp {
		out.WriteString(f.paint(colorCyan, entry.Time.Format("2006-01-02 15:04:05.000")))
		out.WriteByte(' ')
	}

	out.WriteString(f.paint(levelColor(entry.Level), strings.ToUpper(entry.Level.String())))
	out.WriteByte(' ')

	if tag != "" {
		out.WriteString(f.paint(colorMagenta, "["+tag+"]"))
		out.WriteByte(' ')
	}

	if f.Caller && entry.HasCaller() {
		out.WriteString(f.paint(colorYellow, fmt.Sprintf("[%s:%d]", entry.Caller.File, entry.Caller.Line)))
		out.WriteByte(' ')
	}

	out.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		out.WriteByte(' ')
		out.WriteString(f.formatFields(entry.Data))
	}

	out.WriteByte('\n')
	return []byte(out.String())
}

func (f *CustomFormatter) paint(color int, s string) string {
	if !f.Colors {
		return s
	}
	return fmt.Sprintf("\033[%dm%s%s", color, s, colorReset)
}

// levelColor returns the ANSI color code for a log level
func levelColor(level logrus.Level) int {
	switch level {
	case logrus.InfoLevel:
		return colorGreen
	case logrus.WarnLevel:
		return colorYellow
	case logrus.ErrorLevel:
		return colorRed
	case logrus.FatalLevel, logrus.PanicLevel:
		return colorMagenta
	default:
		return colorWhite
	}
}

// formatFields prints fields sorted by key so lines are stable
func (f *CustomFormatter) formatFields(fields logrus.Fields) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v := formatValue(k, fields[k])
		if f.Colors {
			parts = append(parts, fmt.Sprintf("\033[%dm%s%s=\033[%dm%s%s", colorBlue, k, colorReset, colorGreen, v, colorReset))
		} else {
			parts = append(parts, k+"="+v)
		}
	}
	return strings.Join(parts, " ")
}

// formatValue formats a field value. Patterns and samples are never shortened.
func formatValue(key string, value interface{}) string {
	switch v := value.(type) {
	case time.Duration:
		return v.String()
	case time.Time:
		return v.Format("15:04:05.000")
	case string:
		if key != FieldPattern && key != FieldSample && len(v) > 50 {
			return v[:50] + "..."
		}
		return v
	case error:
		return v.Error()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// InferenceFormatter tags inference events so they stand out in mixed logs
type InferenceFormatter struct {
	CustomFormatter
}

// Format implements logrus.Formatter
func (f *InferenceFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	return f.format(entry, eventTag(entry.Message)), nil
}

// eventTag maps the messages emitted by Logger helpers to a short tag
func eventTag(message string) string {
	switch message {
	case msgInferred:
		return "INFER"
	case msgRejected:
		return "REJECT"
	case msgConflict:
		return "CONFLICT"
	case msgVerified, msgSkipped:
		return "VERIFY"
	default:
		return ""
	}
}
