package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("cash")
	require.NoError(t, err)
	assert.Equal(t, MethodCash, m)

	// Unknown methods pass through as opaque strings.
	m, err = ParseMethod("qris")
	require.NoError(t, err)
	assert.Equal(t, Method("qris"), m)

	m, err = ParseMethod("  card  ")
	require.NoError(t, err)
	assert.Equal(t, MethodCard, m)
}

func TestParseMethod_Empty(t *testing.T) {
	_, err := ParseMethod("   ")
	assert.ErrorIs(t, err, ErrEmptyMethod)
}
