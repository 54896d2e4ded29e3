package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger = slog.New(slog.NewTextHandler(os.Stdout, nil))

// Init configures the process logger. Production gets JSON output,
// everything else a human readable text handler with debug level.
func Init(environment string) {
	var handler slog.Handler

	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	log = slog.New(handler)
}

func Info(msg string, args ...any) {
	log.Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
}

func Fatal(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize lets callers pass bare errors or values without a key,
// e.g. logger.Error("failed to load order", err).
func normalize(args []any) []any {
	if len(args)%2 == 0 {
		return args
	}

	out := make([]any, 0, len(args)+1)
	for i, a := range args {
		if i == len(args)-1 {
			if err, ok := a.(error); ok {
				out = append(out, "error", err)
				continue
			}
			out = append(out, "detail", a)
			continue
		}
		out = append(out, a)
	}

	return out
}
