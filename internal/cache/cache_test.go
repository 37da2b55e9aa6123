package cache

import (
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/creai-labs/creai/internal/component"
)

func TestKey(t *testing.T) {
	longCode := strings.Repeat("x", 300)

	tests := []struct {
		name     string
		prompt   string
		code     string
		expected string
	}{
		{
			name:     "short code kept whole",
			prompt:   "make it blue",
			code:     "const X = 1",
			expected: "make it blueconst X = 1",
		},
		{
			name:     "long code truncated to prefix",
			prompt:   "p",
			code:     longCode,
			expected: "p" + strings.Repeat("x", KeyPrefixLen),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Key(tt.prompt, tt.code))
		})
	}
}

func TestMemoryPutGet(t *testing.T) {
	m := NewMemory(0)

	rec := &component.Record{SourceCode: "const X = 1"}
	m.Put("k", rec)

	got, ok := m.Get("k")
	require.True(t, ok)
	assert.Equal(t, rec.SourceCode, got.SourceCode)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestMemoryReturnsCopy(t *testing.T) {
	m := NewMemory(0)

	m.Put("k", &component.Record{SourceCode: "original"})

	got, ok := m.Get("k")
	require.True(t, ok)
	got.SourceCode = "mutated"

	again, ok := m.Get("k")
	require.True(t, ok)
	assert.Equal(t, "original", again.SourceCode)
}

func TestMemoryClear(t *testing.T) {
	m := NewMemory(0)
	m.Put("k", &component.Record{SourceCode: "x"})

	m.Clear()

	_, ok := m.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestMemoryTTL(t *testing.T) {
	m := NewMemory(10 * time.Millisecond)
	m.Put("k", &component.Record{SourceCode: "x"})

	_, ok := m.Get("k")
	assert.True(t, ok)

	time.Sleep(25 * time.Millisecond)

	_, ok = m.Get("k")
	assert.False(t, ok, "expired entry must not be served")
}

func TestMemorySweep(t *testing.T) {
	m := NewMemory(10 * time.Millisecond)
	m.Put("a", &component.Record{SourceCode: "x"})
	m.Put("b", &component.Record{SourceCode: "y"})

	time.Sleep(25 * time.Millisecond)
	m.Put("c", &component.Record{SourceCode: "z"})

	removed := m.Sweep()

	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, m.Len())
}

func TestMemoryZeroTTLNeverExpires(t *testing.T) {
	m := NewMemory(0)
	m.Put("k", &component.Record{SourceCode: "x"})

	assert.Equal(t, 0, m.Sweep())

	_, ok := m.Get("k")
	assert.True(t, ok)
}

func newTestRedis(t *testing.T) *Redis {
	t.Helper()

	mr := miniredis.RunT(t)

	r, err := NewRedis(RedisConfig{Address: mr.Addr()}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })

	return r
}

func TestRedisPutGet(t *testing.T) {
	r := newTestRedis(t)

	rec := &component.Record{
		Description: "a card",
		PreviewHTML: "<div>Card</div>",
		SourceCode:  "const Card = () => {}",
	}
	r.Put("k", rec)

	got, ok := r.Get("k")
	require.True(t, ok)
	assert.Equal(t, *rec, *got)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRedisClear(t *testing.T) {
	r := newTestRedis(t)

	r.Put("a", &component.Record{SourceCode: "x"})
	r.Put("b", &component.Record{SourceCode: "y"})

	r.Clear()

	_, ok := r.Get("a")
	assert.False(t, ok)
	_, ok = r.Get("b")
	assert.False(t, ok)
}

func TestRedisConnectFailure(t *testing.T) {
	_, err := NewRedis(RedisConfig{Address: "127.0.0.1:1"}, zap.NewNop())
	assert.Error(t, err)
}
