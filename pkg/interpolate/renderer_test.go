package interpolate_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/graphvalid/pkg/constraint"
	"github.com/dmitrymomot/graphvalid/pkg/interpolate"
)

type rootBean struct{}

func TestNewRenderer(t *testing.T) {
	t.Run("rejects nil interpolator", func(t *testing.T) {
		_, err := interpolate.NewRenderer(nil, reflect.TypeOf(rootBean{}))
		assert.ErrorIs(t, err, interpolate.ErrNilInterpolator)
	})
}

func TestRendererRender(t *testing.T) {
	rootType := reflect.TypeOf(rootBean{})
	d := &constraint.Descriptor{Name: "required", MessageTemplate: "{required.message}"}

	t.Run("returns the interpolated message", func(t *testing.T) {
		interp := interpolate.InterpolatorFunc(func(template string, ctx interpolate.Context) (string, error) {
			return "value must not be empty", nil
		})
		r, err := interpolate.NewRenderer(interp, rootType)
		require.NoError(t, err)

		msg, err := r.Render("{required.message}", "", d, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "value must not be empty", msg)
	})

	t.Run("passes the full context to the interpolator", func(t *testing.T) {
		var got interpolate.Context
		interp := interpolate.InterpolatorFunc(func(template string, ctx interpolate.Context) (string, error) {
			got = ctx
			return "ok", nil
		})
		r, err := interpolate.NewRenderer(interp, rootType)
		require.NoError(t, err)

		params := map[string]any{"max": 10}
		exprs := map[string]any{"actual": 12}
		_, err = r.Render("tmpl", 12, d, params, exprs)
		require.NoError(t, err)

		assert.Equal(t, "tmpl", got.Template)
		assert.Equal(t, 12, got.Value)
		assert.Equal(t, rootType, got.RootType)
		assert.Equal(t, d, got.Descriptor)
		assert.Equal(t, params, got.Parameters)
		assert.Equal(t, exprs, got.Expressions)
	})

	t.Run("domain errors pass through unchanged", func(t *testing.T) {
		domain := constraint.NewError("bad_expression", "unparsable")
		interp := interpolate.InterpolatorFunc(func(string, interpolate.Context) (string, error) {
			return "", domain
		})
		r, err := interpolate.NewRenderer(interp, rootType)
		require.NoError(t, err)

		_, err = r.Render("tmpl", nil, d, nil, nil)
		require.Error(t, err)

		var got *constraint.Error
		require.ErrorAs(t, err, &got)
		assert.Same(t, domain, got)
		assert.False(t, interpolate.IsInterpolationError(err))
	})

	t.Run("other failures are wrapped with the original as cause", func(t *testing.T) {
		cause := errors.New("template engine exploded")
		interp := interpolate.InterpolatorFunc(func(string, interpolate.Context) (string, error) {
			return "", cause
		})
		r, err := interpolate.NewRenderer(interp, rootType)
		require.NoError(t, err)

		_, err = r.Render("tmpl", nil, d, nil, nil)
		require.Error(t, err)

		assert.True(t, interpolate.IsInterpolationError(err))
		assert.ErrorIs(t, err, cause)
		assert.False(t, constraint.IsDomainError(err))

		var ierr *interpolate.Error
		require.ErrorAs(t, err, &ierr)
		assert.Equal(t, "tmpl", ierr.Template)
		assert.Same(t, cause, ierr.Cause)
	})
}
