package record_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/attrkit"
	"github.com/syssam/attrkit/record"
	"github.com/syssam/attrkit/schema/attr"
)

func TestNew(t *testing.T) {
	t.Parallel()

	rt, err := record.Compose(nil,
		record.WithName("Server"),
		record.WithAttrs(
			attr.New("host"),
			attr.New("port").Default(8080),
		),
	)
	require.NoError(t, err)

	t.Run("Keywords", func(t *testing.T) {
		t.Parallel()
		in, err := rt.New(map[string]any{"host": "example.com", "port": 443})
		require.NoError(t, err)
		assert.Equal(t, "example.com", in.MustGet("host"))
		assert.Equal(t, 443, in.MustGet("port"))
	})

	t.Run("Default", func(t *testing.T) {
		t.Parallel()
		in, err := rt.New(map[string]any{"host": "example.com"})
		require.NoError(t, err)
		assert.Equal(t, 8080, in.MustGet("port"))
	})

	t.Run("Missing", func(t *testing.T) {
		t.Parallel()
		_, err := rt.New(map[string]any{"port": 80})
		require.Error(t, err)
		assert.True(t, attrkit.IsMissingArgument(err))
		assert.Equal(t, `attrkit: missing keyword value for "host" on Server`, err.Error())
	})

	t.Run("NilKwargs", func(t *testing.T) {
		t.Parallel()
		_, err := rt.New(nil)
		require.Error(t, err)
		assert.True(t, attrkit.IsMissingArgument(err))
	})

	t.Run("Unknown", func(t *testing.T) {
		t.Parallel()
		_, err := rt.New(map[string]any{"host": "h", "tls": true})
		require.Error(t, err)
		assert.True(t, attrkit.IsUnknownArgument(err))
		assert.Equal(t, `attrkit: unknown keyword argument "tls" for Server`, err.Error())
	})

	t.Run("Positional", func(t *testing.T) {
		t.Parallel()
		_, err := rt.New(map[string]any{"host": "h"}, "leftover")
		require.Error(t, err)
		assert.True(t, attrkit.IsUnknownArgument(err))
	})

	t.Run("KwargsUntouched", func(t *testing.T) {
		t.Parallel()
		kw := map[string]any{"host": "h"}
		_, err := rt.New(kw)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"host": "h"}, kw, "the caller's map is cloned, not drained")
	})
}

func TestNewNothingArgument(t *testing.T) {
	t.Parallel()

	rt, err := record.Compose(nil,
		record.WithName("S"),
		record.WithAttrs(attr.New("x").Default(42)),
	)
	require.NoError(t, err)

	// Passing the sentinel explicitly is the same as not passing the
	// keyword at all.
	in, err := rt.New(map[string]any{"x": attrkit.Nothing})
	require.NoError(t, err)
	assert.Equal(t, 42, in.MustGet("x"))
}

func TestNewDefaultFunc(t *testing.T) {
	t.Parallel()

	rt, err := record.Compose(nil,
		record.WithName("Job"),
		record.WithAttrs(
			attr.New("id").DefaultFunc(uuid.New),
			attr.New("tags").DefaultFunc(func() []string { return []string{} }),
		),
	)
	require.NoError(t, err)

	a, err := rt.New(nil)
	require.NoError(t, err)
	b, err := rt.New(nil)
	require.NoError(t, err)

	assert.NotEqual(t, a.MustGet("id"), b.MustGet("id"), "the factory runs per construction")

	ta := a.MustGet("tags").([]string)
	tb := b.MustGet("tags").([]string)
	ta = append(ta, "x")
	assert.Empty(t, tb, "factory values are fresh, never shared")
	_ = ta
}

func TestNewTypeConstraint(t *testing.T) {
	t.Parallel()

	rt, err := record.Compose(nil,
		record.WithName("Server"),
		record.WithAttrs(attr.New("port").GoType(0)),
	)
	require.NoError(t, err)

	_, err = rt.New(map[string]any{"port": "8080"})
	require.Error(t, err)
	assert.True(t, attrkit.IsTypeMismatch(err))
	assert.Equal(t, `attrkit: value for attribute "port" on Server must be of type int, got string`, err.Error())

	in, err := rt.New(map[string]any{"port": 8080})
	require.NoError(t, err)
	assert.Equal(t, 8080, in.MustGet("port"))
}

func TestNewAlias(t *testing.T) {
	t.Parallel()

	rt, err := record.Compose(nil,
		record.WithName("C"),
		record.WithAttrs(attr.New("_connection")),
	)
	require.NoError(t, err)

	in, err := rt.New(map[string]any{"connection": "established"})
	require.NoError(t, err)
	assert.Equal(t, "established", in.MustGet("_connection"))

	// The private name is not a valid keyword.
	_, err = rt.New(map[string]any{"_connection": "established"})
	require.Error(t, err)
	assert.True(t, attrkit.IsMissingArgument(err))
	assert.Contains(t, err.Error(), `"connection"`, "the error names the public keyword")
}

func TestNewBaseInit(t *testing.T) {
	t.Parallel()

	var gotArgs []any
	var gotKwargs map[string]any
	rt, err := record.Compose(nil,
		record.WithName("S"),
		record.WithAttrs(attr.New("x")),
		record.WithBaseInit(func(in *record.Instance, args []any, kwargs map[string]any) error {
			gotArgs = args
			gotKwargs = kwargs
			return in.Set("extra", kwargs["extra"])
		}),
	)
	require.NoError(t, err)

	in, err := rt.New(map[string]any{"x": 1, "extra": "y"}, "pos")
	require.NoError(t, err)
	assert.Equal(t, []any{"pos"}, gotArgs)
	assert.Equal(t, map[string]any{"extra": "y"}, gotKwargs, "consumed attribute keywords never reach the base initializer")
	assert.Equal(t, "y", in.MustGet("extra"))
}

func TestNewWithoutInit(t *testing.T) {
	t.Parallel()

	rt, err := record.Compose(nil,
		record.WithName("S"),
		record.WithNames("x"),
		record.WithoutInit(),
	)
	require.NoError(t, err)
	_, err = rt.New(map[string]any{"x": 1})
	require.Error(t, err)
	assert.True(t, attrkit.IsConfig(err))
}

func TestNewOmitInit(t *testing.T) {
	t.Parallel()

	rt, err := record.Compose(nil,
		record.WithName("S"),
		record.WithAttrs(
			attr.New("x"),
			attr.New("_derived").OmitInit(),
		),
	)
	require.NoError(t, err)

	in, err := rt.New(map[string]any{"x": 1})
	require.NoError(t, err)
	_, ok := in.Get("_derived")
	assert.False(t, ok)

	// The excluded attribute is not a keyword either.
	_, err = rt.New(map[string]any{"x": 1, "derived": 2})
	require.Error(t, err)
	assert.True(t, attrkit.IsUnknownArgument(err))
}

func TestNewRaw(t *testing.T) {
	t.Parallel()

	rt, err := record.Compose(nil,
		record.WithName("S"),
		record.WithAttrs(attr.New("x").GoType(0).Default(1)),
	)
	require.NoError(t, err)

	// Raw construction bypasses defaults and type constraints alike.
	in := rt.NewRaw(map[string]any{"x": "not an int", "extra": true})
	assert.Equal(t, "not an int", in.MustGet("x"))
	assert.Equal(t, true, in.MustGet("extra"))
	assert.Same(t, rt, in.Type())

	empty := rt.NewRaw(nil)
	_, ok := empty.Get("x")
	assert.False(t, ok)
}

func TestMustGet(t *testing.T) {
	t.Parallel()

	rt, err := record.Compose(nil, record.WithName("S"), record.WithNames("x"))
	require.NoError(t, err)
	in := rt.NewRaw(nil)
	assert.Panics(t, func() { in.MustGet("x") })
}
