package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Config opcje loggera.
type Config struct {
	Env   string // development -> czytelna konsola; inne -> JSON
	Level string // debug, info, warn, error
}

// Logger cienka otoczka na zerolog — wstrzykiwana do przypadków użycia
// i adapterów, żeby logowanie było spójne w całej aplikacji.
type Logger struct {
	zl zerolog.Logger
}

// New tworzy logger strukturalny zgodnie z konfiguracją.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stderr
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

// Nop zwraca logger, który niczego nie zapisuje — do testów.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debug, Info, Warn, Error, Fatal delegują do zerologa.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With tworzy sublogger ze stałymi polami.
func (l *Logger) With() zerolog.Context { return l.zl.With() }
