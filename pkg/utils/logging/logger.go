package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fatih/color"
	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/clog/hooks"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
	"github.com/m-mizutani/pipesched/pkg/domain/types"
)

var (
	defaultLogger = slog.New(slog.NewTextHandler(os.Stdout, nil))

	mu            sync.RWMutex
	currentFormat = "text"
	currentLevel  = slog.LevelInfo
	currentOutput io.Writer = os.Stdout
)

var levelMap = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

func init() {
	_ = Configure("text", "info", "stdout")
}

// Default returns the default logger
func Default() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// Output returns the writer the default logger writes to
func Output() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return currentOutput
}

// Configure configures the default logger with the given format, level, and output
func Configure(logFormat, logLevel, logOutput string) error {
	level, ok := levelMap[logLevel]
	if !ok {
		return goerr.Wrap(types.ErrInvalidOption, "invalid log level", goerr.V("value", logLevel))
	}

	var w io.Writer
	switch logOutput {
	case "stdout", "-":
		w = os.Stdout
	case "stderr":
		w = os.Stderr
	default:
		fd, err := os.Create(filepath.Clean(logOutput))
		if err != nil {
			return goerr.Wrap(err, "failed to open log file", goerr.V("path", logOutput))
		}
		w = fd
	}

	handler, err := newHandler(logFormat, level, w)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	currentFormat = logFormat
	currentLevel = level
	currentOutput = w
	defaultLogger = slog.New(handler)

	return nil
}

// SetLevel replaces the level of the default logger and keeps its format and output
func SetLevel(logLevel string) error {
	level, ok := levelMap[logLevel]
	if !ok {
		return goerr.Wrap(types.ErrInvalidOption, "invalid log level", goerr.V("value", logLevel))
	}

	mu.Lock()
	defer mu.Unlock()
	handler, err := newHandler(currentFormat, level, currentOutput)
	if err != nil {
		return err
	}
	currentLevel = level
	defaultLogger = slog.New(handler)
	return nil
}

// NewLogger builds a logger that has the same format as the default logger but writes to w with level
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	mu.RLock()
	format := currentFormat
	mu.RUnlock()

	handler, err := newHandler(format, level, w)
	if err != nil {
		// format was already validated by Configure
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	}
	return slog.New(handler)
}

// Level returns the level of the default logger
func Level() slog.Level {
	mu.RLock()
	defer mu.RUnlock()
	return currentLevel
}

func newHandler(logFormat string, level slog.Level, w io.Writer) (slog.Handler, error) {
	filter := masq.New(
		// Mask value with `masq:"secret"` tag
		masq.WithTag("secret"),
		masq.WithType[types.BitbucketAppPassword](masq.MaskWithSymbol('*', 16)),
		masq.WithType[types.DatadogAPIKey](masq.MaskWithSymbol('*', 16)),
		masq.WithType[types.DatadogAppKey](masq.MaskWithSymbol('*', 16)),
	)

	switch logFormat {
	case "text":
		return clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithSource(true),
			clog.WithColorMap(&clog.ColorMap{
				Level: map[slog.Level]*color.Color{
					slog.LevelDebug: color.New(color.FgGreen, color.Bold),
					slog.LevelInfo:  color.New(color.FgCyan, color.Bold),
					slog.LevelWarn:  color.New(color.FgYellow, color.Bold),
					slog.LevelError: color.New(color.FgRed, color.Bold),
				},
				LevelDefault: color.New(color.FgBlue, color.Bold),
				Time:         color.New(color.FgWhite),
				Message:      color.New(color.FgHiWhite),
				AttrKey:      color.New(color.FgHiCyan),
				AttrValue:    color.New(color.FgHiWhite),
			}),
			clog.WithAttrHook(hooks.GoErr()),
			clog.WithReplaceAttr(filter),
		), nil

	case "json":
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource:   true,
			Level:       level,
			ReplaceAttr: filter,
		}), nil

	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid log format, should be 'json' or 'text'", goerr.V("value", logFormat))
	}
}
