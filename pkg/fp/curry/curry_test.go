package curry

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func join3(args ...any) any {
	return args[0].(string) + args[1].(string) + args[2].(string)
}

func recoverErr(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()
	return nil
}

func TestN_AllGroupingsAgree(t *testing.T) {
	t.Parallel()

	f := N(3, join3).(Func)

	groupings := map[string]any{
		"a,b,c":   f("a", "b", "c"),
		"a|b,c":   Call(f("a"), "b", "c"),
		"a,b|c":   Call(f("a", "b"), "c"),
		"a|b|c":   Call(Call(f("a"), "b"), "c"),
		"|a|b,c":  Call(Call(f(), "a"), "b", "c"),
		"a|  |bc": Call(Call(f("a")), "b", "c"),
	}

	for name, got := range groupings {
		if got != "abc" {
			t.Fatalf("grouping %s: expected 'abc', got %v", name, got)
		}
	}
}

func TestN_InvokesImmediatelyWhenSaturated(t *testing.T) {
	t.Parallel()

	calls := 0
	res := N(2, func(args ...any) any {
		calls++
		return args[0].(int) + args[1].(int)
	}, 40, 2)

	if res != 42 || calls != 1 {
		t.Fatalf("expected 42 after one call, got %v after %d calls", res, calls)
	}
}

func TestN_ZeroArity(t *testing.T) {
	t.Parallel()

	res := N(0, func(args ...any) any { return len(args) })
	if res != 0 {
		t.Fatalf("expected immediate invocation with no args, got %v", res)
	}
}

func TestN_PartialsAreIndependent(t *testing.T) {
	t.Parallel()

	f := N(3, join3).(Func)
	ab := f("a", "b").(Func)

	first := ab("c")
	second := ab("d")

	assert.Equal(t, "abc", first)
	assert.Equal(t, "abd", second)
}

func TestN_OverSupplyPanics(t *testing.T) {
	t.Parallel()

	err := recoverErr(func() { N(2, join3, "a", "b", "c") })
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrArity))

	f := N(3, join3).(Func)
	err = recoverErr(func() { Call(f("a", "b"), "c", "d") })
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrArity))
}

func TestN_NegativeArityPanics(t *testing.T) {
	t.Parallel()

	err := recoverErr(func() { N(-1, join3) })
	assert.ErrorIs(t, err, ErrArity)
}

func TestCall_NotCallable(t *testing.T) {
	t.Parallel()

	err := recoverErr(func() { Call(42, 1) })
	assert.ErrorIs(t, err, ErrNotCallable)
}

func TestTypedHelpers(t *testing.T) {
	t.Parallel()

	sub := func(a, b int) int { return a - b }
	format := func(a int, b string, c bool) string {
		return strconv.Itoa(a) + b + strconv.FormatBool(c)
	}

	assert.Equal(t, 7, Curry2(sub)(10)(3))
	assert.Equal(t, 7, Uncurry2(Curry2(sub))(10, 3))
	assert.Equal(t, "1xtrue", Curry3(format)(1)("x")(true))
	assert.Equal(t, "1xtrue", Uncurry3(Curry3(format))(1, "x", true))
	assert.Equal(t, 7, Partial2(sub, 10)(3))
	assert.Equal(t, -7, Flip2(sub)(10, 3))
}
