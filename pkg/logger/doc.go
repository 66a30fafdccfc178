// Package logger builds the structured logging sink a validation run takes
// at construction time.
//
// The package is a thin factory over log/slog: New assembles a logger from
// functional options (level, format, output, static attributes), and
// NewFromEnv drives the same factory from GRAPHVALID_LOG_LEVEL and
// GRAPHVALID_LOG_FORMAT. There is no package-level default logger; the sink
// is always passed explicitly to whatever needs it.
//
// Attr helpers (RunID, GroupName, Path, Rule, Violations) keep field names
// consistent across every record the validation core emits.
package logger
