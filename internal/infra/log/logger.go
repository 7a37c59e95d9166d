package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"bitablog/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type Params struct {
	fx.In

	Config *config.Config
	// Output defaults to stdout.
	Output io.Writer `optional:"true"`
}

// New builds the process logger. Every line carries the service name and environment so the
// blog API and the comment worker can share a log sink.
func New(params Params) (*slog.Logger, error) {
	level, err := parseLogLevel(params.Config.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	out := params.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: level == slog.LevelDebug}

	var handler slog.Handler
	if params.Config.Env.Log.Pretty {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}

	var attrs []slog.Attr
	if name := params.Config.Env.ServiceName; name != "" {
		attrs = append(attrs, slog.String("service", name))
	}
	if env := params.Config.Env.Env; env != "" {
		attrs = append(attrs, slog.String("env", env))
	}

	return slog.New(handler.WithAttrs(attrs)), nil
}

// parseLogLevel accepts debug, info, warn and error in any case. An empty level means info.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
