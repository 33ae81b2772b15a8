package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Logger/LogEntry/Fields 暴露底层类型，调用方无需直接依赖 logrus。
type Logger = logrus.Logger
type LogEntry = logrus.Entry
type Fields = logrus.Fields

// DefaultLogPath is where the run log goes unless -printtoconsole is given.
const DefaultLogPath = "logs/argtab.log"

var (
	rootLogger = logrus.StandardLogger()
	runID      = uuid.NewString()
)

// Configure sets the shared formatter and caller reporting.
func Configure() {
	root().SetReportCaller(true)
	root().SetFormatter(PlainFormatter{})
}

// SetupFile redirects the root logger to logPath and returns the file so
// the caller can close it.
func SetupFile(logPath string) (io.Closer, string, error) {
	if logPath == "" {
		logPath = DefaultLogPath
	}
	f, resolved, err := openLogFile(logPath)
	if err != nil {
		return nil, "", err
	}
	root().SetOutput(f)
	return f, resolved, nil
}

// SetOutput points the root logger at w, e.g. os.Stderr.
func SetOutput(w io.Writer) {
	root().SetOutput(w)
}

// SetDebug toggles debug level on the root logger.
func SetDebug(on bool) {
	if on {
		root().SetLevel(logrus.DebugLevel)
		return
	}
	root().SetLevel(logrus.InfoLevel)
}

// Root 返回全局共享的 logger。
func Root() *Logger {
	return root()
}

// SetRoot replaces the root logger; nil restores the standard logger.
func SetRoot(l *Logger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	rootLogger = l
}

// RunID identifies this process in every entry created by Named.
func RunID() string {
	return runID
}

// Named returns an entry tagged with component and the run id.
func Named(component string) *LogEntry {
	entry := logrus.NewEntry(root()).WithField("run_id", runID)
	if component != "" {
		entry = entry.WithField("component", component)
	}
	return entry
}

func root() *logrus.Logger {
	if rootLogger == nil {
		rootLogger = logrus.StandardLogger()
	}
	return rootLogger
}

// PlainFormatter writes: caller [timestamp] [LEVEL] [component] message fields.
type PlainFormatter struct{}

// Format implements logrus.Formatter.
func (PlainFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if entry == nil {
		return []byte{}, nil
	}
	timestamp := entry.Time.UTC().Format(time.RFC3339Nano)
	level := strings.ToUpper(entry.Level.String())
	component := ""
	if val, ok := entry.Data["component"].(string); ok && val != "" {
		component = val
	}

	parts := make([]string, 0, 6)
	if caller := formatCaller(entry); caller != "" {
		parts = append(parts, caller)
	}
	parts = append(parts, fmt.Sprintf("[%s]", timestamp))
	parts = append(parts, fmt.Sprintf("[%s]", level))
	if component != "" {
		parts = append(parts, fmt.Sprintf("[%s]", component))
	}
	parts = append(parts, entry.Message)
	if fields := formatFields(entry.Data); fields != "" {
		parts = append(parts, fields)
	}
	return []byte(strings.Join(parts, " ") + "\n"), nil
}

func formatCaller(entry *logrus.Entry) string {
	if entry.HasCaller() && entry.Caller != nil {
		return fmt.Sprintf("%s:%d", shortenFilePath(entry.Caller.File), entry.Caller.Line)
	}
	if caller, ok := entry.Data["caller"].(string); ok && caller != "" {
		return caller
	}
	return ""
}

func formatFields(fields logrus.Fields) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == "component" || k == "caller" {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return strings.Join(parts, " ")
}

// shortenFilePath trims a caller path to its repo-relative part.
func shortenFilePath(file string) string {
	file = filepath.ToSlash(file)
	for _, marker := range []string{"/internal/", "/cmd/"} {
		if idx := strings.Index(file, marker); idx != -1 {
			return file[idx+1:]
		}
	}
	return filepath.Base(file)
}

func openLogFile(logPath string) (*os.File, string, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, "", err
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, "", err
	}
	return f, logPath, nil
}
