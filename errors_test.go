package attrkit_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/attrkit"
)

func TestConfigError(t *testing.T) {
	t.Parallel()

	t.Run("Error", func(t *testing.T) {
		t.Parallel()
		err := attrkit.NewConfigError("Point", "x", "duplicate attribute name")
		assert.Equal(t, `attrkit: configuration error on type Point attribute "x": duplicate attribute name`, err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		t.Parallel()
		err := attrkit.NewConfigError("Point", "", "mixing")
		assert.True(t, errors.Is(err, attrkit.ErrConfig))
	})

	t.Run("Unwrap", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("boom")
		err := attrkit.NewConfigErrorCause("Point", "x", "invalid attribute", cause)
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("IsConfig", func(t *testing.T) {
		t.Parallel()
		err := attrkit.NewConfigError("Point", "", "bad")
		assert.True(t, attrkit.IsConfig(err))

		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, attrkit.IsConfig(wrapped))

		assert.True(t, attrkit.IsConfig(attrkit.ErrConfig))
		assert.False(t, attrkit.IsConfig(errors.New("other error")))
		assert.False(t, attrkit.IsConfig(nil))
	})
}

func TestMissingArgumentError(t *testing.T) {
	t.Parallel()

	t.Run("Error", func(t *testing.T) {
		t.Parallel()
		err := attrkit.NewMissingArgumentError("Point", "x")
		assert.Equal(t, `attrkit: missing keyword value for "x" on Point`, err.Error())
	})

	t.Run("IsMissingArgument", func(t *testing.T) {
		t.Parallel()
		err := attrkit.NewMissingArgumentError("Point", "y")
		assert.True(t, attrkit.IsMissingArgument(err))
		assert.True(t, errors.Is(err, attrkit.ErrMissingArgument))

		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, attrkit.IsMissingArgument(wrapped))

		assert.False(t, attrkit.IsMissingArgument(errors.New("other error")))
		assert.False(t, attrkit.IsMissingArgument(nil))
	})
}

func TestTypeMismatchError(t *testing.T) {
	t.Parallel()

	t.Run("Error", func(t *testing.T) {
		t.Parallel()
		err := attrkit.NewTypeMismatchError("Point", "x", reflect.TypeOf(0), reflect.TypeOf(""))
		assert.Equal(t, `attrkit: value for attribute "x" on Point must be of type int, got string`, err.Error())
	})

	t.Run("UntypedNil", func(t *testing.T) {
		t.Parallel()
		err := attrkit.NewTypeMismatchError("Point", "x", reflect.TypeOf(0), nil)
		assert.Equal(t, `attrkit: value for attribute "x" on Point must be of type int, got untyped nil`, err.Error())
	})

	t.Run("IsTypeMismatch", func(t *testing.T) {
		t.Parallel()
		err := attrkit.NewTypeMismatchError("Point", "x", reflect.TypeOf(0), reflect.TypeOf(""))
		assert.True(t, attrkit.IsTypeMismatch(err))
		assert.True(t, errors.Is(err, attrkit.ErrTypeMismatch))
		assert.False(t, attrkit.IsTypeMismatch(nil))
	})
}

func TestImmutableFieldError(t *testing.T) {
	t.Parallel()

	t.Run("Error", func(t *testing.T) {
		t.Parallel()
		err := attrkit.NewImmutableFieldError("Point", "x")
		assert.Equal(t, `attrkit: attribute "x" of Point is immutable`, err.Error())
	})

	t.Run("IsImmutableField", func(t *testing.T) {
		t.Parallel()
		err := attrkit.NewImmutableFieldError("Point", "x")
		assert.True(t, attrkit.IsImmutableField(err))
		assert.True(t, errors.Is(err, attrkit.ErrImmutableField))

		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, attrkit.IsImmutableField(wrapped))
		assert.False(t, attrkit.IsImmutableField(nil))
	})
}

func TestUnknownArgumentError(t *testing.T) {
	t.Parallel()

	t.Run("Keyword", func(t *testing.T) {
		t.Parallel()
		err := attrkit.NewUnknownArgumentError("Point", "z")
		assert.Equal(t, `attrkit: unknown keyword argument "z" for Point`, err.Error())
	})

	t.Run("Positional", func(t *testing.T) {
		t.Parallel()
		err := attrkit.NewPositionalArgumentError("Point")
		assert.Equal(t, "attrkit: Point takes no positional arguments", err.Error())
	})

	t.Run("IsUnknownArgument", func(t *testing.T) {
		t.Parallel()
		err := attrkit.NewUnknownArgumentError("Point", "z")
		assert.True(t, attrkit.IsUnknownArgument(err))
		assert.True(t, errors.Is(err, attrkit.ErrUnknownArgument))
		assert.False(t, attrkit.IsUnknownArgument(errors.New("other error")))
		assert.False(t, attrkit.IsUnknownArgument(nil))
	})
}
