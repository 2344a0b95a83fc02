package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedWindowLimiter_RedisNil_Allows(t *testing.T) {
	l := NewFixedWindowLimiter(nil)

	d, err := l.AllowFixedWindow(context.Background(), "k", 10, time.Minute)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 10, d.Remaining)
}

func TestFixedWindowLimiter_LimitZero_Allows(t *testing.T) {
	c, _ := newTestClient(t)
	l := NewFixedWindowLimiter(c)

	d, err := l.AllowFixedWindow(context.Background(), "k", 0, time.Minute)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestFixedWindowLimiter_BlocksAfterLimit(t *testing.T) {
	c, mr := newTestClient(t)
	l := NewFixedWindowLimiter(c)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		d, err := l.AllowFixedWindow(ctx, "rl:login:ip:1.2.3.4", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, d.Allowed, "hit %d", i)
		assert.Equal(t, 3-i, d.Remaining)
	}

	d, err := l.AllowFixedWindow(ctx, "rl:login:ip:1.2.3.4", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 4, d.Count)
	assert.Equal(t, 0, d.Remaining)
	assert.Greater(t, d.RetryAfter, time.Duration(0))
	assert.LessOrEqual(t, d.RetryAfter, time.Minute)

	// window expiry resets the counter
	mr.FastForward(time.Minute + time.Second)
	d, err = l.AllowFixedWindow(ctx, "rl:login:ip:1.2.3.4", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestFixedWindowLimiter_RedisDown_ReturnsError(t *testing.T) {
	c, mr := newTestClient(t)
	l := NewFixedWindowLimiter(c)
	mr.Close()

	_, err := l.AllowFixedWindow(context.Background(), "k", 5, time.Minute)
	assert.Error(t, err)
}
