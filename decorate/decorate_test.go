package decorate_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contracts"
	"github.com/dmitrymomot/contracts/decorate"
)

func requireViolation(t *testing.T, fn func()) *decorate.Violation {
	t.Helper()
	var violation *decorate.Violation
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected a violation panic")
			v, ok := r.(*decorate.Violation)
			require.True(t, ok, "panic value should be *Violation, got %T", r)
			violation = v
		}()
		fn()
	}()
	return violation
}

func requireMalformedSpecPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a wrap-time panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		require.ErrorIs(t, err, decorate.ErrMalformedSpec)
	}()
	fn()
}

func TestWrap(t *testing.T) {
	t.Run("passes valid calls through unchanged", func(t *testing.T) {
		add := decorate.Wrap(func(a, b int) int { return a + b }, decorate.Spec{
			Params:  []any{contracts.Num, contracts.Num},
			Results: []any{contracts.Num},
		}).(func(int, int) int)

		assert.Equal(t, 5, add(2, 3))
	})

	t.Run("validates parameters before the call", func(t *testing.T) {
		calls := 0
		half := decorate.Wrap(func(n int) int { calls++; return n / 2 }, decorate.Spec{
			Params:  []any{contracts.Pos},
			Results: []any{contracts.Num},
		}).(func(int) int)

		v := requireViolation(t, func() { half(-4) })
		assert.Equal(t, "argument 1", v.Position)
		assert.Equal(t, "a positive number", v.Expected)
		assert.Equal(t, -4, v.Value)
		assert.Zero(t, calls, "the wrapped function must not run on violation")
	})

	t.Run("names the offending argument position", func(t *testing.T) {
		pair := decorate.Wrap(func(a int, b int) {}, decorate.Spec{
			Params: []any{contracts.Num, contracts.Pos},
		}).(func(int, int))

		v := requireViolation(t, func() { pair(1, -1) })
		assert.Equal(t, "argument 2", v.Position)
	})

	t.Run("validates results after the call", func(t *testing.T) {
		broken := decorate.Wrap(func() int { return -1 }, decorate.Spec{
			Results: []any{contracts.Pos},
		}).(func() int)

		v := requireViolation(t, func() { broken() })
		assert.Equal(t, "result 1", v.Position)
		assert.Equal(t, "a positive number", v.Expected)
	})

	t.Run("reports the failing sub-contract of a combinator", func(t *testing.T) {
		id := decorate.Wrap(func(v any) any { return v }, decorate.Spec{
			Params:  []any{contracts.Or(contracts.Num, contracts.Type[string]())},
			Results: []any{contracts.Any},
		}).(func(any) any)

		v := requireViolation(t, func() { id(true) })
		assert.Equal(t, "a number or string", v.Expected)
	})

	t.Run("error message names position, value and expectation", func(t *testing.T) {
		v := requireViolation(t, func() {
			decorate.Wrap(func(n int) {}, decorate.Spec{
				Params: []any{contracts.Pos},
			}).(func(int))(-7)
		})
		assert.Equal(t, "contract violation: argument 1: got -7, want a positive number", v.Error())
	})
}

func TestWrapVariadic(t *testing.T) {
	spec := decorate.Spec{
		Params:  []any{contracts.Num, contracts.Args(contracts.Pos)},
		Results: []any{contracts.Num},
	}
	sum := decorate.Wrap(func(base int, ns ...int) int {
		for _, n := range ns {
			base += n
		}
		return base
	}, spec).(func(int, ...int) int)

	t.Run("applies the element contract to each tail element", func(t *testing.T) {
		assert.Equal(t, 6, sum(1, 2, 3))
		assert.Equal(t, 1, sum(1))
	})

	t.Run("names the offending tail position", func(t *testing.T) {
		v := requireViolation(t, func() { sum(1, 2, -3) })
		assert.Equal(t, "argument 3", v.Position)
		assert.Equal(t, "a positive number", v.Expected)
		assert.Equal(t, -3, v.Value)
	})
}

func TestWrapMalformedSpec(t *testing.T) {
	t.Run("rejects non-function values", func(t *testing.T) {
		requireMalformedSpecPanic(t, func() {
			decorate.Wrap(5, decorate.Spec{})
		})
	})

	t.Run("rejects parameter count mismatch", func(t *testing.T) {
		requireMalformedSpecPanic(t, func() {
			decorate.Wrap(func(a, b int) {}, decorate.Spec{
				Params: []any{contracts.Num},
			})
		})
	})

	t.Run("rejects result count mismatch", func(t *testing.T) {
		requireMalformedSpecPanic(t, func() {
			decorate.Wrap(func() int { return 0 }, decorate.Spec{})
		})
	})

	t.Run("rejects Args outside the variadic tail", func(t *testing.T) {
		requireMalformedSpecPanic(t, func() {
			decorate.Wrap(func(a int) {}, decorate.Spec{
				Params: []any{contracts.Args(contracts.Num)},
			})
		})
	})

	t.Run("requires Args for a variadic function", func(t *testing.T) {
		requireMalformedSpecPanic(t, func() {
			decorate.Wrap(func(ns ...int) {}, decorate.Spec{
				Params: []any{contracts.Num},
			})
		})
	})
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	wrapped := decorate.Wrap(func(n int) {}, decorate.Spec{
		Params: []any{contracts.Pos},
	}, decorate.WithLogger(logger)).(func(int))

	requireViolation(t, func() { wrapped(-1) })

	out := buf.String()
	assert.Contains(t, out, "contract violation")
	assert.Contains(t, out, "argument 1")
	assert.Contains(t, out, "a positive number")
}

func TestCheck(t *testing.T) {
	t.Run("returns nil on pass", func(t *testing.T) {
		assert.NoError(t, decorate.Check(5, contracts.Pos))
	})

	t.Run("returns the violation on failure", func(t *testing.T) {
		err := decorate.Check(-5, contracts.Pos)
		require.Error(t, err)

		var v *decorate.Violation
		require.ErrorAs(t, err, &v)
		assert.Equal(t, "a positive number", v.Expected)
		assert.Equal(t, -5, v.Value)
	})
}
