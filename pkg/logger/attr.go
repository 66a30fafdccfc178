package logger

import (
	"log/slog"

	"github.com/dmitrymomot/graphvalid/pkg/constraint"
	"github.com/dmitrymomot/graphvalid/pkg/valpath"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RunID records the validation run identifier under the key "run_id".
func RunID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("run_id", id)
}

// GroupName records the validation group under the key "group".
func GroupName(g constraint.Group) slog.Attr {
	return slog.String("group", string(g))
}

// Path records a traversal path under the key "path". The root path renders
// as "<root>".
func Path(p *valpath.Path) slog.Attr {
	if p == nil {
		return slog.Attr{}
	}
	if p.IsRoot() {
		return slog.String("path", "<root>")
	}
	return slog.String("path", p.String())
}

// Rule records the failing constraint name under the key "rule".
func Rule(d *constraint.Descriptor) slog.Attr {
	if d == nil {
		return slog.Attr{}
	}
	return slog.String("rule", d.Name)
}

// Violations records the accumulated violation count under the key
// "violations".
func Violations(n int) slog.Attr {
	return slog.Int("violations", n)
}

// RootType records the root bean type name under the key "root_type".
func RootType(name string) slog.Attr {
	return slog.String("root_type", name)
}
