package aplog

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

type Builder interface {
	WithComponent(componentId string) Builder
	WithNamespace(namespaceId string) Builder
	Build() *slog.Logger
}

type builder struct {
	l *slog.Logger
}

func (b *builder) WithComponent(componentId string) Builder {
	return &builder{l: b.l.With("component", componentId)}
}

func (b *builder) WithNamespace(namespaceId string) Builder {
	return &builder{l: b.l.With("namespace_id", namespaceId)}
}

func (b *builder) Build() *slog.Logger {
	return b.l
}

func NewBuilder(l *slog.Logger) Builder {
	if l == nil {
		panic("cannot create log builder with nil log")
	}

	return &builder{l: l}
}

var _ Builder = &builder{}

// NewRootLogger builds the root logger for the CLI. Verbose lowers the
// minimum level to debug.
func NewRootLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})

	return slog.New(handler)
}
