package cache

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"coordinator-console/internal/clients/redis"
	"coordinator-console/internal/observability"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func TestKey_HidesToken(t *testing.T) {
	key := Key(ResourceBrands, "secret-token")

	assert.True(t, strings.HasPrefix(key, "console:lists:brands:"))
	assert.NotContains(t, key, "secret-token")
	assert.Equal(t, key, Key(ResourceBrands, "secret-token"))
	assert.NotEqual(t, key, Key(ResourceBrands, "other-token"))
}

func TestMemory_StaleAfterTTL(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewMemoryWithClock(30*time.Second, clock.Now)
	ctx := context.Background()
	key := Key(ResourceBrands, "t1")

	require.NoError(t, c.Set(ctx, key, []string{"acme"}))

	clock.now = clock.now.Add(29 * time.Second)
	var got []string
	ok, err := c.Get(ctx, key, &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"acme"}, got)

	clock.now = clock.now.Add(time.Second)
	ok, err = c.Get(ctx, key, &got)
	require.NoError(t, err)
	assert.False(t, ok, "entry should be stale after 30s")
}

func TestMemory_SetSweepsExpiredEntries(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewMemoryWithClock(30*time.Second, clock.Now)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, Key(ResourceBrands, "old-session"), []string{"acme"}))
	clock.now = clock.now.Add(31 * time.Second)
	require.NoError(t, c.Set(ctx, Key(ResourceBrands, "new-session"), []string{"acme"}))

	assert.Len(t, c.entries, 1)
	_, ok := c.entries[Key(ResourceBrands, "new-session")]
	assert.True(t, ok)
}

func TestMemory_InvalidateResource(t *testing.T) {
	c := NewMemory(time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, Key(ResourceBrands, "t1"), []int{1}))
	require.NoError(t, c.Set(ctx, Key(ResourceBrands, "t2"), []int{2}))
	require.NoError(t, c.Set(ctx, Key(ResourceCampaigns, "t1"), []int{3}))

	require.NoError(t, c.Invalidate(ctx, ResourceBrands))

	var got []int
	ok, _ := c.Get(ctx, Key(ResourceBrands, "t1"), &got)
	assert.False(t, ok)
	ok, _ = c.Get(ctx, Key(ResourceBrands, "t2"), &got)
	assert.False(t, ok)
	ok, _ = c.Get(ctx, Key(ResourceCampaigns, "t1"), &got)
	assert.True(t, ok)
}

func TestFetch(t *testing.T) {
	ctx := context.Background()
	key := Key(ResourceNurses, "t1")

	t.Run("loads once then serves cache", func(t *testing.T) {
		c := NewMemory(time.Minute)
		calls := 0
		load := func(context.Context) ([]string, error) {
			calls++
			return []string{"jane"}, nil
		}

		first, err := Fetch(ctx, c, key, false, load)
		require.NoError(t, err)
		second, err := Fetch(ctx, c, key, false, load)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, calls)
	})

	t.Run("refresh bypasses cache", func(t *testing.T) {
		c := NewMemory(time.Minute)
		calls := 0
		load := func(context.Context) ([]string, error) {
			calls++
			return []string{"jane"}, nil
		}

		_, _ = Fetch(ctx, c, key, false, load)
		_, err := Fetch(ctx, c, key, true, load)
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("load error is not cached", func(t *testing.T) {
		c := NewMemory(time.Minute)
		boom := errors.New("boom")

		_, err := Fetch(ctx, c, key, false, func(context.Context) ([]string, error) { return nil, boom })
		assert.ErrorIs(t, err, boom)

		var got []string
		ok, _ := c.Get(ctx, key, &got)
		assert.False(t, ok)
	})
}

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.Wrap(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}), observability.NewNopLogger())
	t.Cleanup(func() { _ = client.Close() })
	return NewRedis(client, 30*time.Second, observability.NewNopLogger()), mr
}

func TestRedis_SetGetAndExpire(t *testing.T) {
	c, mr := newTestRedis(t)
	ctx := context.Background()
	key := Key(ResourceCampaigns, "t1")

	require.NoError(t, c.Set(ctx, key, map[string]int{"id": 7}))

	var got map[string]int
	ok, err := c.Get(ctx, key, &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 7, got["id"])

	mr.FastForward(31 * time.Second)
	ok, err = c.Get(ctx, key, &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedis_Invalidate(t *testing.T) {
	c, mr := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, Key(ResourceAdmins, "t1"), []int{1}))
	require.NoError(t, c.Set(ctx, Key(ResourceAdmins, "t2"), []int{2}))
	require.NoError(t, c.Set(ctx, Key(ResourceNurses, "t1"), []int{3}))

	require.NoError(t, c.Invalidate(ctx, ResourceAdmins))

	assert.False(t, mr.Exists(Key(ResourceAdmins, "t1")))
	assert.False(t, mr.Exists(Key(ResourceAdmins, "t2")))
	assert.True(t, mr.Exists(Key(ResourceNurses, "t1")))
}
