package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath        = "path"
	KeyTarget      = "target"
	KeyLocale      = "locale"
	KeyFormat      = "format"
	KeySnapshot    = "snapshot"
	KeyDurationMS  = "duration_ms"
	KeyIssues      = "issues"
	KeyRewriteFrom = "rewrite_from"
	KeyRewriteTo   = "rewrite_to"
	KeyError       = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Target(t string) slog.Attr       { return slog.String(KeyTarget, t) }
func Locale(key string) slog.Attr     { return slog.String(KeyLocale, key) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Snapshot(s string) slog.Attr     { return slog.String(KeySnapshot, s) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Issues(n int) slog.Attr          { return slog.Int(KeyIssues, n) }
func RewriteFrom(p string) slog.Attr  { return slog.String(KeyRewriteFrom, p) }
func RewriteTo(p string) slog.Attr    { return slog.String(KeyRewriteTo, p) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
