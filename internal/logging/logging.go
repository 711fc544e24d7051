package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultMaxLogFiles is the default number of per-run log files kept
const DefaultMaxLogFiles = 1000

// Logger is the public logger instance accessible from all packages.
// It discards everything until Initialize is called.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

var fileWriter io.Closer

// Options controls where logs go
type Options struct {
	Debug       bool
	DebugFile   string
	MaxLogFiles int
	Verbose     bool
}

// Initialize sets up the logger and returns the log file path, if any
func Initialize(opts Options) (string, error) {
	// Inherit settings from a parent gitwatch process
	if os.Getenv("GITWATCH_DEBUG") == "1" {
		opts.Debug = true
	}
	if envDebugFile := os.Getenv("GITWATCH_DEBUG_FILE"); envDebugFile != "" && opts.DebugFile == "" {
		opts.DebugFile = envDebugFile
	}
	if envMaxLogFiles := os.Getenv("GITWATCH_MAX_LOG_FILES"); envMaxLogFiles != "" && opts.MaxLogFiles == DefaultMaxLogFiles {
		if parsed, err := strconv.Atoi(envMaxLogFiles); err == nil {
			opts.MaxLogFiles = parsed
		}
	}

	var handlers []slog.Handler
	if opts.Verbose {
		handlers = append(handlers, newStderrHandler())
	}

	if !opts.Debug && opts.DebugFile == "" {
		if len(handlers) == 0 {
			Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		} else {
			Logger = slog.New(newMultiHandler(handlers...))
		}
		return "", nil
	}

	writer, logFilePath, err := openLogWriter(opts)
	if err != nil {
		return "", err
	}
	fileWriter = writer

	handlers = append(handlers, slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	Logger = slog.New(newMultiHandler(handlers...))

	// Only announce the log file when debug was not inherited
	if os.Getenv("GITWATCH_DEBUG") == "" {
		Logger.Info("Debug logging initialized", "log_file", logFilePath)
		fmt.Fprintf(os.Stderr, "Debug mode enabled. Logs: %s\n", logFilePath)
	}

	return logFilePath, nil
}

// Close flushes and closes the log file, if one is open
func Close() error {
	if fileWriter == nil {
		return nil
	}
	err := fileWriter.Close()
	fileWriter = nil
	return err
}

// openLogWriter returns a size-rotated writer for a custom debug file, or a
// fresh per-run file in the OS log directory with count-based rotation
func openLogWriter(opts Options) (io.WriteCloser, string, error) {
	if opts.DebugFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.DebugFile), 0755); err != nil {
			return nil, "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return &lumberjack.Logger{
			Filename:   opts.DebugFile,
			MaxSize:    50, // MB
			MaxBackups: 3,
		}, opts.DebugFile, nil
	}

	logDir, err := getLogDir()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get log directory: %w", err)
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if opts.MaxLogFiles > 0 {
		if err := rotateLogs(logDir, opts.MaxLogFiles); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}

	logFilePath := filepath.Join(logDir, fmt.Sprintf("%s.log", uuid.New().String()))
	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create log file: %w", err)
	}

	return logFile, logFilePath, nil
}

func newStderrHandler() slog.Handler {
	noColor := !isatty.IsTerminal(os.Stderr.Fd()) || os.Getenv("NO_COLOR") != ""
	return tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		NoColor:    noColor,
		TimeFormat: time.TimeOnly,
	})
}

// rotateLogs removes the oldest log files so that at most maxLogFiles remain
// after the new one is created
func rotateLogs(logDir string, maxLogFiles int) error {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFileInfo struct {
		modTime time.Time
		path    string
	}
	var logFiles []logFileInfo

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logFiles = append(logFiles, logFileInfo{
			modTime: info.ModTime(),
			path:    filepath.Join(logDir, entry.Name()),
		})
	}

	if len(logFiles) < maxLogFiles {
		return nil
	}

	sort.Slice(logFiles, func(i, j int) bool {
		return logFiles[i].modTime.Before(logFiles[j].modTime)
	})

	numToDelete := len(logFiles) - maxLogFiles + 1
	for i := 0; i < numToDelete && i < len(logFiles); i++ {
		if err := os.Remove(logFiles[i].path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", logFiles[i].path, err)
		}
	}

	return nil
}

// getLogDir returns the OS-specific log directory
func getLogDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", "gitwatch"), nil
	case "linux":
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, "gitwatch"), nil
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, "gitwatch", "logs"), nil
	default:
		return filepath.Join(homeDir, ".gitwatch", "logs"), nil
	}
}
