// Package cli provides the command-line interface for tickr.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mrz1836/tickr/internal/constants"
	"github.com/mrz1836/tickr/internal/logging"
)

// logFileWriter holds the log file writer for cleanup purposes.
var logFileWriter io.WriteCloser //nolint:gochecknoglobals // Needed for cleanup

// InitLogger creates and configures a zerolog.Logger based on verbosity flags.
//
// Log levels are set as follows:
//   - verbose=true: Debug level (most detailed)
//   - quiet=true: Warn level (errors and warnings only)
//   - default: Info level (normal operation)
//
// While the clock owns the terminal, writing logs to stderr would draw over
// the alt screen, so a live TTY gets file-only logging. A redirected stderr
// gets JSON log lines as usual. The file sink is a rotating log under
// ~/.tickr/logs; if it cannot be created the logger degrades to the stderr
// policy alone.
func InitLogger(verbose, quiet bool) zerolog.Logger {
	writer := selectOutput()

	if fileWriter, err := createLogFileWriter(); err == nil {
		logFileWriter = fileWriter
		writer = zerolog.MultiLevelWriter(writer, fileWriter)
	}

	logger := zerolog.New(writer).
		Level(selectLevel(verbose, quiet)).
		Hook(logging.NewUptimeHook()).
		With().Timestamp().Logger()

	setGlobalLogger(logger)
	return logger
}

// InitLoggerWithWriter creates a zerolog.Logger with a custom writer.
// This is primarily intended for testing purposes.
func InitLoggerWithWriter(verbose, quiet bool, w io.Writer) zerolog.Logger {
	logger := zerolog.New(w).
		Level(selectLevel(verbose, quiet)).
		Hook(logging.NewUptimeHook()).
		With().Timestamp().Logger()

	setGlobalLogger(logger)
	return logger
}

// CloseLogFile flushes and closes the rotating log file, if one was opened.
func CloseLogFile() {
	if logFileWriter != nil {
		_ = logFileWriter.Close()
		logFileWriter = nil
	}
}

// setGlobalLogger configures the global zerolog logger to match the CLI
// logger, so code using the github.com/rs/zerolog/log package gets the same
// sinks and level.
func setGlobalLogger(cliLogger zerolog.Logger) {
	log.Logger = cliLogger
}

// selectLevel maps verbosity flags to a zerolog level.
func selectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// selectOutput determines the stderr sink. A live terminal belongs to the
// clock face, so logs are discarded there and only reach the file sink.
func selectOutput() io.Writer {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return io.Discard
	}
	return os.Stderr
}

// createLogFileWriter creates a rotating file writer for the CLI log.
func createLogFileWriter() (io.WriteCloser, error) {
	home, err := tickrHome()
	if err != nil {
		return nil, err
	}

	logDir := filepath.Join(home, constants.LogsDir)
	if err := os.MkdirAll(logDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(logDir, constants.LogFileName),
		MaxSize:    constants.LogMaxSizeMB,
		MaxBackups: constants.LogMaxBackups,
		MaxAge:     constants.LogMaxAgeDays,
		Compress:   constants.LogCompress,
	}, nil
}

// tickrHome returns the tickr home directory path.
// If the TICKR_HOME environment variable is set, it uses that.
// Otherwise, it defaults to ~/.tickr.
func tickrHome() (string, error) {
	if home := os.Getenv("TICKR_HOME"); home != "" {
		return home, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.TickrHome), nil
}

// LogFilePath returns the path to the CLI log file.
// This is useful for displaying the log location to users.
func LogFilePath() (string, error) {
	home, err := tickrHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, constants.LogsDir, constants.LogFileName), nil
}
