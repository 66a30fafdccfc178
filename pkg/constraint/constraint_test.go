package constraint_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/graphvalid/pkg/constraint"
)

func TestDescriptorGroups(t *testing.T) {
	t.Run("no declared groups means single group", func(t *testing.T) {
		d := &constraint.Descriptor{Name: "required"}
		assert.True(t, d.DefinedForSingleGroup())
	})

	t.Run("one declared group is single group", func(t *testing.T) {
		d := &constraint.Descriptor{Name: "required", Groups: []constraint.Group{"create"}}
		assert.True(t, d.DefinedForSingleGroup())
	})

	t.Run("two groups is multi group", func(t *testing.T) {
		d := &constraint.Descriptor{Name: "required", Groups: []constraint.Group{"create", "update"}}
		assert.False(t, d.DefinedForSingleGroup())
	})

	t.Run("undeclared groups participate in default only", func(t *testing.T) {
		d := &constraint.Descriptor{Name: "required"}
		assert.True(t, d.InGroup(constraint.DefaultGroup))
		assert.False(t, d.InGroup("create"))
	})

	t.Run("declared groups replace the default", func(t *testing.T) {
		d := &constraint.Descriptor{Name: "required", Groups: []constraint.Group{"create"}}
		assert.True(t, d.InGroup("create"))
		assert.False(t, d.InGroup(constraint.DefaultGroup))
	})
}

func TestError(t *testing.T) {
	t.Run("carries code and message", func(t *testing.T) {
		err := constraint.NewError("bad_expression", "cannot parse message expression")
		assert.Equal(t, "bad_expression: cannot parse message expression", err.Error())
	})

	t.Run("exposes cause through Unwrap", func(t *testing.T) {
		cause := errors.New("boom")
		err := &constraint.Error{Code: "resolver_failure", Message: "resolver misconfigured", Cause: cause}
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("recognized through wrapping", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", constraint.NewError("x", "y"))
		assert.True(t, constraint.IsDomainError(err))
	})

	t.Run("arbitrary errors are not domain errors", func(t *testing.T) {
		assert.False(t, constraint.IsDomainError(errors.New("plain")))
		assert.False(t, constraint.IsDomainError(nil))
	})
}

func TestClock(t *testing.T) {
	t.Run("clock func adapts a function", func(t *testing.T) {
		fixed := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
		var clock constraint.ClockProvider = constraint.ClockFunc(func() time.Time { return fixed })
		assert.Equal(t, fixed, clock.Now())
	})

	t.Run("system clock moves forward", func(t *testing.T) {
		before := time.Now()
		now := constraint.SystemClock.Now()
		require.False(t, now.Before(before))
	})
}
