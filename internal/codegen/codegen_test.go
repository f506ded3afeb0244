package codegen

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func never(string) (bool, error) { return false, nil }

func TestGenerateShape(t *testing.T) {
	contactShape := regexp.MustCompile(`^[A-Z]{2}[1-9][0-9]{3}$`)
	fileShape := regexp.MustCompile(`^[A-Z]{3}[1-9][0-9]{4}$`)

	for i := 0; i < 50; i++ {
		code, err := Generate(ContactCode, never)
		require.NoError(t, err)
		assert.Regexp(t, contactShape, code)

		code, err = Generate(FileName, never)
		require.NoError(t, err)
		assert.Regexp(t, fileShape, code)
	}
}

func TestGenerateWidensOnCollision(t *testing.T) {
	baseLen := ContactCode.Letters + ContactCode.Digits

	// Every base-width candidate is taken, so the suffix must widen.
	code, err := Generate(ContactCode, func(candidate string) (bool, error) {
		return len(candidate) == baseLen, nil
	})
	require.NoError(t, err)
	assert.Len(t, code, baseLen+1)
}

func TestGenerateExhaustion(t *testing.T) {
	calls := 0
	_, err := Generate(ContactCode, func(string) (bool, error) {
		calls++
		return true, nil
	})
	assert.ErrorIs(t, err, ErrSpaceExhausted)
	assert.Equal(t, 100, calls)
}

func TestGeneratePropagatesCheckError(t *testing.T) {
	boom := errors.New("query failed")
	_, err := Generate(ContactCode, func(string) (bool, error) {
		return false, boom
	})
	assert.ErrorIs(t, err, boom)
}
