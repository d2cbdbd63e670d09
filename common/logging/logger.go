package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

type Logger = zerolog.Logger

// SetupGlobalLevel parses level and applies it process-wide. It panics on an
// unknown level name; use TrySetupGlobalLevel when the value comes from the user.
func SetupGlobalLevel(level string) {
	if err := TrySetupGlobalLevel(level); err != nil {
		panic(err)
	}
}

func TrySetupGlobalLevel(level string) error {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(l)
	return nil
}

// SetLogSeverityFromEnv reads LOG_LEVEL; defaults to INFO.
func SetLogSeverityFromEnv() {
	if lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err != nil {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(lvl)
	}
}

func NewLogger(component string) Logger {
	return newConsoleLogger().With().
		Str(FieldComponent, component).
		Timestamp().
		Logger()
}

func NewLoggerWithWriter(component string, writer io.Writer) Logger {
	return zerolog.New(writer).With().
		Str(FieldComponent, component).
		Timestamp().
		Logger()
}

func Nop() Logger {
	return zerolog.Nop()
}

func newConsoleLogger() zerolog.Logger {
	noColor := os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd()))

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.DateTime,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			FieldComponent,
			zerolog.MessageFieldName,
		},
		NoColor: noColor,
	}
	return zerolog.New(consoleWriter)
}
