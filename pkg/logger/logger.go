// Package logger is a thin wrapper over zerolog with
// the room-specific fields and the console layout.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Level mirrors zerolog levels, so callers don't import zerolog.
type Level int8

const (
	TraceLevel = Level(zerolog.TraceLevel)
	DebugLevel = Level(zerolog.DebugLevel)
	InfoLevel  = Level(zerolog.InfoLevel)
	WarnLevel  = Level(zerolog.WarnLevel)
	ErrorLevel = Level(zerolog.ErrorLevel)
	NoLevel    = Level(zerolog.NoLevel)
	Disabled   = Level(zerolog.Disabled)
)

func (l Level) String() string {
	if l == Disabled {
		return "disabled"
	}
	return zerolog.Level(l).String()
}

// Fields printed in front of the message by the console writer.
const (
	ClientField    = "c"
	DirectionField = "d"
	ModuleField    = "m"
	ServiceField   = "s"
	RoleField      = "role"
)

type Logger struct {
	logger zerolog.Logger
}

// NewConsole makes a human-friendly logger.
// The tag is printed with each line as the service name.
func NewConsole(isDebug bool, tag string, noColor bool) *Logger {
	level := zerolog.InfoLevel
	if isDebug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		NoColor:    noColor,
		TimeFormat: "15:04:05.0000",
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			ServiceField,
			DirectionField,
			ClientField,
			ModuleField,
			zerolog.MessageFieldName,
		},
		FieldsExclude: []string{ServiceField, DirectionField, ClientField, ModuleField},
	}
	if noColor {
		out.FormatMessage = func(i any) string {
			if i == nil {
				return ""
			}
			return fmt.Sprint(i)
		}
	}

	return &Logger{logger: zerolog.New(out).With().
		Timestamp().
		Str(ServiceField, tag).
		Str(DirectionField, " ").
		Str(ClientField, " ").
		Str(ModuleField, "").
		Logger()}
}

// NewWriter makes a JSON logger over the writer.
func NewWriter(w io.Writer) *Logger {
	return &Logger{logger: zerolog.New(w).With().Timestamp().Logger()}
}

func Default() *Logger { return &Logger{logger: log.Logger} }
func Nop() *Logger     { return &Logger{logger: zerolog.Nop()} }

func (l *Logger) GetLevel() Level { return Level(l.logger.GetLevel()) }

// With starts a child logger context.
func (l *Logger) With() zerolog.Context { return l.logger.With() }

// Extend makes a logger from the child context.
func (l *Logger) Extend(ctx zerolog.Context) *Logger { return &Logger{logger: ctx.Logger()} }

// Module returns a child logger tagged with a module name.
func (l *Logger) Module(name string) *Logger { return l.Extend(l.With().Str(ModuleField, name)) }

// You must call Msg on the returned events in order to send them.

func (l *Logger) Debug() *zerolog.Event { return l.logger.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.logger.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.logger.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.logger.Error() }

// Fatal calls os.Exit(1) after the message is sent.
func (l *Logger) Fatal() *zerolog.Event { return l.logger.Fatal() }
