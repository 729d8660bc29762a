// Package logger sets up the single per-run log sink.
//
// Each process run writes to one timestamped file under the logs directory,
// e.g. logs/07_19_2025_21_32_40.log. The file is append-only for the process
// lifetime and is never rotated or deleted by this system.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger/LogEntry aliases keep callers off the logrus import path.
type Logger = logrus.Logger
type LogEntry = logrus.Entry

// DefaultDir is the log directory relative to the working directory.
const DefaultDir = "logs"

// fileNameLayout names the log file by process start time: MM_DD_YYYY_HH_MM_SS.
const fileNameLayout = "01_02_2006_15_04_05"

// Setup creates the log directory if needed, opens a timestamped log file,
// and returns a logger writing to it. Call it exactly once, from the process
// entry point, before any other component runs; consumers receive the handle
// rather than reading ambient global state. The returned closer flushes the
// file at process exit.
func Setup(dir string) (*Logger, io.Closer, string, error) {
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, "", err
	}

	path := filepath.Join(dir, time.Now().Format(fileNameLayout)+".log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, "", err
	}

	l := logrus.New()
	l.SetReportCaller(true)
	l.SetFormatter(LineFormatter{})
	l.SetOutput(file)
	l.SetLevel(logrus.InfoLevel)

	return l, file, path, nil
}

// Named returns an entry carrying a component field, so every line records
// which pipeline stage emitted it.
func Named(l *Logger, component string) *LogEntry {
	entry := logrus.NewEntry(l)
	if component != "" {
		entry = entry.WithField("component", component)
	}
	return entry
}

// LineFormatter renders entries as
// [ <timestamp> ] <line> <component> - <LEVEL> - <message>
type LineFormatter struct{}

// timestampLayout mirrors the classic asctime format, milliseconds included.
const timestampLayout = "2006-01-02 15:04:05.000"

// Format implements logrus.Formatter.
func (LineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if entry == nil {
		return []byte{}, nil
	}

	line := 0
	if entry.HasCaller() && entry.Caller != nil {
		line = entry.Caller.Line
	}

	component := "root"
	if val, ok := entry.Data["component"].(string); ok && val != "" {
		component = val
	}

	level := strings.ToUpper(entry.Level.String())
	timestamp := entry.Time.Format(timestampLayout)

	return []byte(fmt.Sprintf("[ %s ] %d %s - %s - %s\n",
		timestamp, line, component, level, entry.Message)), nil
}
