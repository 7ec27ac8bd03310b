package log

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// sensitiveKeys contains attribute keys that are always masked.
// The SonarQube token travels as an Authorization header and as config
// fields named like these.
var sensitiveKeys = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"token":               true,
	"auth_token":          true,
	"authtoken":           true,
	"api_key":             true,
	"apikey":              true,
	"password":            true,
	"secret":              true,
	"credential":          true,
	"credentials":         true,
}

// sensitivePatterns contains value shapes that are masked regardless of the
// attribute key. SonarQube tokens are prefixed squ_ (user), sqa_ (global
// analysis), or sqp_ (project analysis) followed by a hex string.
var sensitivePatterns = []*regexp.Regexp{
	// SonarQube token formats
	regexp.MustCompile(`^sq[uap]_[0-9a-f]{8,}$`),

	// Bearer / Basic authorization values
	regexp.MustCompile(`(?i)^bearer\s+.+`),
	regexp.MustCompile(`(?i)^basic\s+[A-Za-z0-9+/=]+$`),

	// JWT tokens
	regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`),

	// Long bare hex strings (legacy SonarQube tokens have no prefix)
	regexp.MustCompile(`^[0-9a-f]{40,}$`),
}

// MaskValue is the string used to replace sensitive values.
const MaskValue = "***REDACTED***"

// SecureHandler wraps an slog.Handler and masks sensitive attribute values
// before passing records on. Wrapping at the handler level means it works
// with any underlying handler (text, JSON) and with every logger derived
// via With/WithGroup.
type SecureHandler struct {
	handler slog.Handler
}

// NewSecureHandler creates a SecureHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
func NewSecureHandler(handler slog.Handler) *SecureHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &SecureHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
func (h *SecureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle masks the record's attributes and passes it to the underlying handler.
func (h *SecureHandler) Handle(ctx context.Context, r slog.Record) error {
	masked := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		masked.AddAttrs(h.maskAttr(a))
		return true
	})
	return h.handler.Handle(ctx, masked)
}

// WithAttrs returns a new handler with the given attributes added, masked.
func (h *SecureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	maskedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		maskedAttrs[i] = h.maskAttr(a)
	}
	return &SecureHandler{handler: h.handler.WithAttrs(maskedAttrs)}
}

// WithGroup returns a new handler with the given group name.
func (h *SecureHandler) WithGroup(name string) slog.Handler {
	return &SecureHandler{handler: h.handler.WithGroup(name)}
}

// maskAttr masks a single attribute, recursively handling groups.
func (h *SecureHandler) maskAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		maskedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			maskedAttrs[i] = h.maskAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(maskedAttrs...)}
	}

	keyLower := strings.ToLower(a.Key)
	if sensitiveKeys[keyLower] || containsSensitiveKeyword(keyLower) {
		return slog.String(a.Key, MaskValue)
	}

	if a.Value.Kind() == slog.KindString && isSensitiveValue(a.Value.String()) {
		return slog.String(a.Key, MaskValue)
	}

	return a
}

// containsSensitiveKeyword checks the key for credential-related substrings.
// The bare word "key" is intentionally excluded: this tool logs "projectKey"
// and "ruleKey" constantly and neither is a secret.
func containsSensitiveKeyword(key string) bool {
	for _, keyword := range []string{"password", "secret", "token", "credential"} {
		if strings.Contains(key, keyword) {
			return true
		}
	}
	return false
}

// isSensitiveValue checks whether a value matches a credential shape.
func isSensitiveValue(value string) bool {
	for _, pattern := range sensitivePatterns {
		if pattern.MatchString(value) {
			return true
		}
	}
	return false
}

// NewSecureLogger creates an slog.Logger writing human-readable lines to w
// with credential masking applied. verbose selects Debug level; otherwise
// only warnings and errors are emitted.
func NewSecureLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	textHandler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewSecureHandler(textHandler))
}
