package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

func init() {
	log = newLogger("development", "info", os.Stderr)
}

// Init configures the package logger. Production environments log JSON,
// everything else uses the console writer. LOG_LEVEL overrides the level.
func Init(env string) {
	InitWithWriter(env, os.Getenv("LOG_LEVEL"), os.Stderr)
}

func InitWithWriter(env, level string, out io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log = newLogger(env, level, out)
}

func newLogger(env, level string, out io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	if strings.ToLower(env) != "production" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05", NoColor: true}
	}

	return zerolog.New(out).Level(parseLevel(level)).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func Debug(msg string, args ...any) {
	write(current().Debug(), msg, args)
}

func Info(msg string, args ...any) {
	write(current().Info(), msg, args)
}

func Warn(msg string, args ...any) {
	write(current().Warn(), msg, args)
}

func Error(msg string, args ...any) {
	write(current().Error(), msg, args)
}

// Fatal logs and exits the process.
func Fatal(msg string, args ...any) {
	l := current()
	write(l.Error(), msg, args)
	os.Exit(1)
}

func current() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := log
	return &l
}

// write attaches key/value pairs. An unpaired trailing argument is logged
// under "error", which covers calls like logger.Error("msg", err).
func write(ev *zerolog.Event, msg string, args []any) {
	if ev == nil {
		return
	}

	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			appendField(ev, "error", args[i])
			break
		}

		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		appendField(ev, key, args[i+1])
	}

	ev.Msg(msg)
}

func appendField(ev *zerolog.Event, key string, val any) {
	switch v := val.(type) {
	case error:
		ev.AnErr(key, v)
	default:
		ev.Interface(key, v)
	}
}
