package ttlog

import (
	"io"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/multi"
	"github.com/himself65/create-addon/cli/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger owns the handlers installed into the global apex/log logger.
type Logger struct {
	// ljLogger is an io.WriteCloser that writes to the configured log file.
	// Nil if file logging is disabled.
	ljLogger *lumberjack.Logger
	// handler is the resulting handler.
	handler log.Handler
}

// NewLogger creates handlers writing human-readable entries to writer and, if
// opts.File is set, JSON entries to the rotated log file.
func NewLogger(writer io.Writer, opts *config.LogOpts) *Logger {
	logger := &Logger{handler: cli.New(writer)}
	if opts == nil || opts.File == "" {
		return logger
	}

	logger.ljLogger = &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAge,
		Compress:   false,
		LocalTime:  true,
	}
	logger.handler = multi.New(logger.handler, json.New(logger.ljLogger))
	return logger
}

// Install sets the logger handler and level for the global apex/log logger.
func (logger *Logger) Install(verbose bool) {
	log.SetHandler(logger.handler)
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// Close implements io.Closer, and closes the current logfile.
func (logger *Logger) Close() error {
	if logger.ljLogger == nil {
		return nil
	}

	return logger.ljLogger.Close()
}
