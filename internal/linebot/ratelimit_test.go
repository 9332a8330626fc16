package linebot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceLimiter(t *testing.T) {
	limiter, err := NewSourceLimiter(1, 2)
	require.NoError(t, err)

	assert.True(t, limiter.Allow("user:U1"))
	assert.True(t, limiter.Allow("user:U1"))
	assert.False(t, limiter.Allow("user:U1"))

	assert.True(t, limiter.Allow("user:U2"))
}

func TestNewSourceLimiter_InvalidRate(t *testing.T) {
	_, err := NewSourceLimiter(0, 1)
	assert.Error(t, err)
}
