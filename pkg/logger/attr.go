package logger

import (
	"log/slog"
	"maps"
	"slices"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Attribute records the validated attribute key under the key "attribute".
func Attribute(name string) slog.Attr {
	return slog.String("attribute", name)
}

// Rule records a rule kind under the key "rule".
func Rule(kind string) slog.Attr {
	return slog.String("rule", kind)
}

// Messages records failure messages keyed by attribute under the key
// "messages", attributes sorted by name. Empty maps produce an empty Attr.
func Messages(msgs map[string][]string) slog.Attr {
	if len(msgs) == 0 {
		return slog.Attr{}
	}
	as := make([]slog.Attr, 0, len(msgs))
	for _, attr := range slices.Sorted(maps.Keys(msgs)) {
		as = append(as, slog.Any(attr, msgs[attr]))
	}
	return slog.Attr{Key: "messages", Value: slog.GroupValue(as...)}
}

// Source records where rules or data were loaded from under the key "source".
func Source(path string) slog.Attr {
	return slog.String("source", path)
}
