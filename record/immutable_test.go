package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/attrkit"
	"github.com/syssam/attrkit/record"
	"github.com/syssam/attrkit/schema/attr"
)

func TestImmutable(t *testing.T) {
	t.Parallel()

	rt, err := record.Compose(nil,
		record.WithName("Frozen"),
		record.WithAttrs(attr.New("x"), attr.New("y").Default(2)),
		record.WithImmutable(),
	)
	require.NoError(t, err)

	t.Run("ConstructionWrites", func(t *testing.T) {
		t.Parallel()
		in, err := rt.New(map[string]any{"x": 1})
		require.NoError(t, err)
		assert.Equal(t, 1, in.MustGet("x"))
		assert.Equal(t, 2, in.MustGet("y"))
	})

	t.Run("LaterWritesFail", func(t *testing.T) {
		t.Parallel()
		in, err := rt.New(map[string]any{"x": 1})
		require.NoError(t, err)

		err = in.Set("x", 99)
		require.Error(t, err)
		assert.True(t, attrkit.IsImmutableField(err))
		assert.Equal(t, `attrkit: attribute "x" of Frozen is immutable`, err.Error())
		assert.Equal(t, 1, in.MustGet("x"), "the failed write leaves the value untouched")
	})

	t.Run("ExtrasWritable", func(t *testing.T) {
		t.Parallel()
		in, err := rt.New(map[string]any{"x": 1})
		require.NoError(t, err)
		require.NoError(t, in.Set("note", "scribble"))
		assert.Equal(t, "scribble", in.MustGet("note"))
	})

	t.Run("RawConstruction", func(t *testing.T) {
		t.Parallel()
		in := rt.NewRaw(map[string]any{"x": 1})
		assert.Equal(t, 1, in.MustGet("x"))
		assert.Error(t, in.Set("x", 2))
	})
}

func TestImmutableOmit(t *testing.T) {
	t.Parallel()

	rt, err := record.Compose(nil,
		record.WithName("S"),
		record.WithAttrs(
			attr.New("locked"),
			attr.New("counter").OmitImmutable().Default(0),
		),
		record.WithImmutable(),
	)
	require.NoError(t, err)

	in, err := rt.New(map[string]any{"locked": true})
	require.NoError(t, err)
	assert.Error(t, in.Set("locked", false))
	require.NoError(t, in.Set("counter", 1))
	assert.Equal(t, 1, in.MustGet("counter"))
}

func TestMutableByDefault(t *testing.T) {
	t.Parallel()

	rt, err := record.Compose(nil,
		record.WithName("S"),
		record.WithNames("x"),
	)
	require.NoError(t, err)
	assert.False(t, rt.Immutable())

	in, err := rt.New(map[string]any{"x": 1})
	require.NoError(t, err)
	require.NoError(t, in.Set("x", 2))
	assert.Equal(t, 2, in.MustGet("x"))
}

func TestImmutableBaseInit(t *testing.T) {
	t.Parallel()

	// The base initializer runs inside the construction window, so it may
	// populate protected attributes too.
	rt, err := record.Compose(nil,
		record.WithName("S"),
		record.WithAttrs(attr.New("x"), attr.New("checksum").OmitInit()),
		record.WithImmutable(),
		record.WithBaseInit(func(in *record.Instance, _ []any, _ map[string]any) error {
			return in.Set("checksum", "abc")
		}),
	)
	require.NoError(t, err)

	in, err := rt.New(map[string]any{"x": 1})
	require.NoError(t, err)
	assert.Equal(t, "abc", in.MustGet("checksum"))
	assert.Error(t, in.Set("checksum", "later"))
}
