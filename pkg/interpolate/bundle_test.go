package interpolate_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/graphvalid/pkg/constraint"
	"github.com/dmitrymomot/graphvalid/pkg/interpolate"
)

func TestBundleInterpolator(t *testing.T) {
	t.Run("resolves message keys from the bundle", func(t *testing.T) {
		b := interpolate.NewBundleInterpolator(
			interpolate.WithMessages(language.English, map[string]string{
				"required.message": "must not be empty",
			}),
		)

		msg, err := b.Interpolate("{required.message}", interpolate.Context{})
		require.NoError(t, err)
		assert.Equal(t, "must not be empty", msg)
	})

	t.Run("substitutes named parameters", func(t *testing.T) {
		b := interpolate.NewBundleInterpolator(
			interpolate.WithMessages(language.English, map[string]string{
				"max.message": "must be at most %{max}, was %{validatedValue}",
			}),
		)

		msg, err := b.Interpolate("{max.message}", interpolate.Context{
			Value:      12,
			Parameters: map[string]any{"max": 10},
		})
		require.NoError(t, err)
		assert.Equal(t, "must be at most 10, was 12", msg)
	})

	t.Run("substitutes expression variables", func(t *testing.T) {
		b := interpolate.NewBundleInterpolator()

		msg, err := b.Interpolate("expected %{expected}", interpolate.Context{
			Expressions: map[string]any{"expected": "a number"},
		})
		require.NoError(t, err)
		assert.Equal(t, "expected a number", msg)
	})

	t.Run("unknown placeholders stay in place", func(t *testing.T) {
		b := interpolate.NewBundleInterpolator()

		msg, err := b.Interpolate("value %{nope}", interpolate.Context{})
		require.NoError(t, err)
		assert.Equal(t, "value %{nope}", msg)
	})

	t.Run("bundle entries may reference other entries", func(t *testing.T) {
		b := interpolate.NewBundleInterpolator(
			interpolate.WithMessages(language.English, map[string]string{
				"outer": "outer says {inner}",
				"inner": "inner",
			}),
		)

		msg, err := b.Interpolate("{outer}", interpolate.Context{})
		require.NoError(t, err)
		assert.Equal(t, "outer says inner", msg)
	})

	t.Run("mutually referencing entries terminate", func(t *testing.T) {
		b := interpolate.NewBundleInterpolator(
			interpolate.WithMessages(language.English, map[string]string{
				"a": "{b}",
				"b": "{a}",
			}),
		)

		_, err := b.Interpolate("{a}", interpolate.Context{})
		require.NoError(t, err)
	})

	t.Run("missing key is left in place by default", func(t *testing.T) {
		b := interpolate.NewBundleInterpolator()

		msg, err := b.Interpolate("{missing.key}", interpolate.Context{})
		require.NoError(t, err)
		assert.Equal(t, "{missing.key}", msg)
	})

	t.Run("missing key warns once across resolution passes", func(t *testing.T) {
		var buf bytes.Buffer
		b := interpolate.NewBundleInterpolator(
			interpolate.WithMessages(language.English, map[string]string{
				"outer": "{inner} and {gone}",
				"inner": "resolved",
			}),
			interpolate.WithBundleLogger(slog.New(slog.NewTextHandler(&buf, nil))),
		)

		msg, err := b.Interpolate("{outer}", interpolate.Context{})
		require.NoError(t, err)
		assert.Equal(t, "resolved and {gone}", msg)
		assert.Equal(t, 1, strings.Count(buf.String(), "message key not found"))
	})

	t.Run("missing key fails as domain error when fallback disabled", func(t *testing.T) {
		b := interpolate.NewBundleInterpolator(
			interpolate.WithFallbackToTemplate(false),
		)

		_, err := b.Interpolate("{missing.key}", interpolate.Context{})
		require.Error(t, err)
		assert.True(t, constraint.IsDomainError(err))
	})

	t.Run("unbalanced braces fail as domain error", func(t *testing.T) {
		b := interpolate.NewBundleInterpolator()

		for _, tmpl := range []string{"{oops", "oops}", "{a}}"} {
			_, err := b.Interpolate(tmpl, interpolate.Context{})
			require.Error(t, err, "template %q", tmpl)
			assert.True(t, constraint.IsDomainError(err), "template %q", tmpl)
		}
	})

	t.Run("picks the closest bundle by language matching", func(t *testing.T) {
		b := interpolate.NewBundleInterpolator(
			interpolate.WithMessages(language.English, map[string]string{"greet": "hello"}),
			interpolate.WithMessages(language.German, map[string]string{"greet": "hallo"}),
			interpolate.WithLanguage(language.MustParse("de-AT")),
		)

		msg, err := b.Interpolate("{greet}", interpolate.Context{})
		require.NoError(t, err)
		assert.Equal(t, "hallo", msg)
	})
}

func TestBundleInterpolatorLoadYAML(t *testing.T) {
	t.Run("loads a flat yaml bundle", func(t *testing.T) {
		b := interpolate.NewBundleInterpolator()
		doc := "required.message: must not be empty\nmax.message: at most %{max}\n"

		require.NoError(t, b.LoadYAML(language.English, strings.NewReader(doc)))

		msg, err := b.Interpolate("{required.message}", interpolate.Context{})
		require.NoError(t, err)
		assert.Equal(t, "must not be empty", msg)
	})

	t.Run("later loads merge over earlier entries", func(t *testing.T) {
		b := interpolate.NewBundleInterpolator(
			interpolate.WithMessages(language.English, map[string]string{"k": "old"}),
		)
		require.NoError(t, b.LoadYAML(language.English, strings.NewReader("k: new\n")))

		msg, err := b.Interpolate("{k}", interpolate.Context{})
		require.NoError(t, err)
		assert.Equal(t, "new", msg)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		b := interpolate.NewBundleInterpolator()
		err := b.LoadYAML(language.English, strings.NewReader(":\n  - broken: [\n"))
		assert.Error(t, err)
	})
}
