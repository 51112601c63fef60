package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestNormalizeCompileError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, domain.NormalizeCompileError(nil))
	})

	t.Run("already normalized errors pass through", func(t *testing.T) {
		ce := &domain.CompileError{Message: "boom"}
		assert.Same(t, ce, domain.NormalizeCompileError(ce))
	})

	t.Run("zerr errors contribute message and metadata", func(t *testing.T) {
		err := zerr.With(zerr.New("analysis failed"), "namespace", "foo.bar")

		ce := domain.NormalizeCompileError(err)
		require.NotNil(t, ce)
		assert.Equal(t, "analysis failed", ce.Message)
		assert.Equal(t, "foo.bar", ce.Data["namespace"])
	})

	t.Run("plain errors become a bare message with cause", func(t *testing.T) {
		inner := errors.New("inner")
		err := fmt.Errorf("outer: %w", inner)

		ce := domain.NormalizeCompileError(err)
		require.NotNil(t, ce)
		assert.Equal(t, "outer: inner", ce.Message)
		assert.Equal(t, inner, ce.Cause)
		assert.Nil(t, ce.Data)
	})

	t.Run("unwraps through the cause chain", func(t *testing.T) {
		inner := errors.New("root cause")
		ce := &domain.CompileError{Message: "top", Cause: inner}
		assert.ErrorIs(t, ce, inner)
	})
}
