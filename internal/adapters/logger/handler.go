package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"
	"github.com/wtsi-hgi/bam2cram-check/internal/ui/output"
	"github.com/wtsi-hgi/bam2cram-check/internal/ui/style"
)

// metadataIndent is the indent of attribute and error metadata lines.
const metadataIndent = "       "

// PrettyHandler is a slog.Handler for terminal output.
// The message goes on the first line; attributes such as path or exit_code follow one per line.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	fields []string
	groups []string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
// A *slog.LevelVar passed as opts.Level is consulted on every record.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w, output.Detect),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	mark := style.ForLevel(r.Level)

	var b strings.Builder
	b.WriteString(h.out.String(mark.Prefix(r.Message)).Foreground(h.out.Color(string(mark.Color))).String())

	fields := h.fields
	if r.NumAttrs() > 0 {
		fields = append([]string(nil), h.fields...)
		r.Attrs(func(attr slog.Attr) bool {
			fields = appendField(fields, h.groups, attr)
			return true
		})
	}
	for _, field := range fields {
		b.WriteString("\n" + metadataIndent)
		b.WriteString(h.out.String(field).Faint().String())
	}
	b.WriteString("\n")

	_, err := h.out.WriteString(b.String())
	return err
}

// WithAttrs returns a new Handler that renders attrs under every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	clone := *h
	clone.fields = append([]string(nil), h.fields...)
	for _, attr := range attrs {
		clone.fields = appendField(clone.fields, h.groups, attr)
	}
	return &clone
}

// WithGroup returns a new Handler qualifying later attributes with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.groups = append(append([]string(nil), h.groups...), name)
	return &clone
}

// appendField adds attr as "key: value", qualifying the key with groups.
// Group values are flattened; empty attributes are dropped.
func appendField(fields, groups []string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return fields
	}

	if attr.Value.Kind() == slog.KindGroup {
		members := attr.Value.Group()
		if attr.Key != "" {
			groups = append(append([]string(nil), groups...), attr.Key)
		}
		for _, member := range members {
			fields = appendField(fields, groups, member)
		}
		return fields
	}

	key := attr.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	return append(fields, key+": "+attr.Value.String())
}
