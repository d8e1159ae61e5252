package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// contentKeys name attributes that carry typed content.
var contentKeys = []string{
	"char",
	"text",
	"frame",
}

// redactedValue is the placeholder for redacted content.
const redactedValue = "***REDACTED***"

// redactContent masks typed content unless the global level is debug.
// Groups are walked recursively.
func redactContent(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactContent(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}

	if globalLevel.Level() <= slog.LevelDebug || !IsContentKey(a.Key) {
		return a
	}
	return slog.String(a.Key, Redact(a.Value.String()))
}

// Redact replaces content with a placeholder that keeps only its length.
func Redact(value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("%s(%d)", redactedValue, len(value))
}

// IsContentKey reports whether an attribute key carries typed content.
func IsContentKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, k := range contentKeys {
		if keyLower == k {
			return true
		}
	}
	return false
}
