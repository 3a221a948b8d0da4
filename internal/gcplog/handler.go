package gcplog

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"runtime"
	"strconv"
	"sync"
	"time"
)

// Options configures the Cloud Logging handler
type Options struct {
	Level   slog.Leveler
	Service string // reported as serviceContext.service
	Version string
}

// Handler is a slog.Handler that formats logs for GCP Cloud Logging
type Handler struct {
	mu     *sync.Mutex
	w      io.Writer
	opts   Options
	attrs  []groupedAttr
	groups []string
}

// groupedAttr remembers the groups that were open when WithAttrs was called
type groupedAttr struct {
	groups []string
	attr   slog.Attr
}

// NewHandler creates a new GCP Cloud Logging compatible handler
func NewHandler(w io.Writer, opts *Options) *Handler {
	if opts == nil {
		opts = &Options{}
	}
	o := *opts
	if o.Level == nil {
		o.Level = slog.LevelInfo
	}
	return &Handler{
		mu:   &sync.Mutex{},
		w:    w,
		opts: o,
	}
}

// Enabled reports whether the handler handles records at the given level
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

// Handle formats and writes a log record
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	entry := make(map[string]any, 8)

	entry["severity"] = severityFromLevel(r.Level)
	entry["message"] = r.Message
	entry["timestamp"] = r.Time.Format(time.RFC3339Nano)

	if h.opts.Service != "" {
		entry["serviceContext"] = map[string]string{
			"service": h.opts.Service,
			"version": h.opts.Version,
		}
	}

	if r.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{r.PC})
		f, _ := fs.Next()
		entry["logging.googleapis.com/sourceLocation"] = map[string]string{
			"file":     f.File,
			"line":     strconv.Itoa(f.Line),
			"function": f.Function,
		}
	}

	for _, ga := range h.attrs {
		addAttr(entry, ga.attr, ga.groups)
	}
	r.Attrs(func(a slog.Attr) bool {
		addAttr(entry, a, h.groups)
		return true
	})

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.w.Write(data)
	return err
}

// WithAttrs returns a new handler with additional attributes
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	clone.attrs = append([]groupedAttr{}, h.attrs...)
	for _, a := range attrs {
		clone.attrs = append(clone.attrs, groupedAttr{groups: h.groups, attr: a})
	}
	return &clone
}

// WithGroup returns a new handler with a group name prepended to attributes
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}

// severityFromLevel maps slog levels to GCP Cloud Logging severity levels
func severityFromLevel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARNING"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}

// addAttr adds an attribute to the entry map, respecting groups.
// Well-known keys are lifted to the top level regardless of grouping.
func addAttr(entry map[string]any, attr slog.Attr, groups []string) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	switch attr.Key {
	case "error", "err":
		if err, ok := attr.Value.Any().(error); ok {
			entry["error"] = map[string]string{"message": err.Error()}
			return
		}
	case "trace", "trace_id":
		entry["logging.googleapis.com/trace"] = attr.Value.Any()
		return
	case "span", "span_id":
		entry["logging.googleapis.com/spanId"] = attr.Value.Any()
		return
	case "httpRequest":
		entry["httpRequest"] = attr.Value.Any()
		return
	}

	target := entry
	for _, group := range groups {
		next, ok := target[group].(map[string]any)
		if !ok {
			next = make(map[string]any)
			target[group] = next
		}
		target = next
	}

	if attr.Value.Kind() == slog.KindGroup {
		sub, ok := target[attr.Key].(map[string]any)
		if !ok {
			sub = make(map[string]any)
			target[attr.Key] = sub
		}
		for _, ga := range attr.Value.Group() {
			addAttr(sub, ga, nil)
		}
		return
	}

	target[attr.Key] = attr.Value.Any()
}
