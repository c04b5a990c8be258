package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/cloudflare/critters/internal/output"
)

type handler struct {
	dst     io.Writer
	mtx     *sync.Mutex
	escaper *strings.Replacer
	prefix  string
	attrs   []slog.Attr
	level   slog.Leveler
	noColor bool
}

func newHandler(dst io.Writer, level slog.Leveler, noColor bool) *handler {
	return &handler{
		dst:     dst,
		mtx:     &sync.Mutex{},
		escaper: strings.NewReplacer(`"`, `\"`),
		level:   level,
		noColor: noColor,
	}
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *handler) Handle(_ context.Context, record slog.Record) error {
	buf := bytes.NewBuffer(make([]byte, 0, 128))

	h.printKey(buf, "level")
	h.printVal(buf, record.Level.String(), levelColor(record.Level))
	_, _ = buf.WriteRune(' ')
	h.printKey(buf, "msg")
	h.printVal(buf, record.Message, output.White)

	for _, attr := range h.attrs {
		h.appendAttr(buf, "", attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		h.appendAttr(buf, h.prefix, attr)
		return true
	})
	_, _ = buf.WriteRune('\n')

	h.mtx.Lock()
	defer h.mtx.Unlock()

	if _, err := buf.WriteTo(h.dst); err != nil {
		return fmt.Errorf("failed to write log line: %w", err)
	}
	return nil
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	nh := *h
	nh.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	nh.attrs = append(nh.attrs, h.attrs...)
	for _, attr := range attrs {
		if h.prefix != "" {
			attr = slog.Attr{Key: strings.TrimSuffix(h.prefix, "."), Value: slog.GroupValue(attr)}
		}
		nh.attrs = append(nh.attrs, attr)
	}
	return &nh
}

func (h *handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.prefix = h.prefix + name + "."
	return &nh
}

func levelColor(level slog.Level) output.Color {
	switch {
	case level >= slog.LevelError:
		return output.Red
	case level >= slog.LevelWarn:
		return output.Yellow
	case level >= slog.LevelInfo:
		return output.White
	default:
		return output.Magenta
	}
}

func (h *handler) printKey(buf *bytes.Buffer, s string) {
	_, _ = buf.WriteString(output.MaybeColor(output.Dim, h.noColor, s+"="))
}

func (h *handler) printVal(buf *bytes.Buffer, s string, color output.Color) {
	if !strings.HasPrefix(s, "[") && !strings.HasPrefix(s, "{") && strings.Contains(s, " ") {
		s = "\"" + h.escaper.Replace(s) + "\""
	}
	_, _ = buf.WriteString(output.MaybeColor(color, h.noColor, s))
}

func (h *handler) appendAttr(buf *bytes.Buffer, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	// Groups with no key are inlined, empty groups print nothing.
	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		for _, ga := range attr.Value.Group() {
			h.appendAttr(buf, prefix, ga)
		}
		return
	}

	_, _ = buf.WriteRune(' ')
	h.printKey(buf, prefix+attr.Key)

	// nolint: exhaustive
	switch attr.Value.Kind() {
	case slog.KindAny:
		switch attr.Value.Any().(type) {
		case error:
			h.printVal(buf, formatString(attr), output.Red)
		default:
			h.printVal(buf, formatAny(attr), output.Cyan)
		}
	case slog.KindString:
		h.printVal(buf, formatString(attr), output.Cyan)
	default:
		h.printVal(buf, attr.Value.String(), output.Blue)
	}
}

func formatAny(attr slog.Attr) string {
	data, err := json.Marshal(attr.Value.Any())
	if err != nil {
		return attr.Value.String()
	}
	return string(data)
}

func formatString(attr slog.Attr) string {
	return strings.ReplaceAll(attr.Value.String(), "\n", "\\n")
}
