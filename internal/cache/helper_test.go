package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestGetSetJSON(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	var got cachedUser
	found, err := GetJSON(ctx, "user:1", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, "user:1", cachedUser{ID: 1, Email: "asha@example.com"}, time.Minute))

	found, err = GetJSON(ctx, "user:1", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "asha@example.com", got.Email)
}

func TestGetSetJSONWithoutClient(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	var got cachedUser
	found, err := GetJSON(ctx, "user:1", &got)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, SetJSON(ctx, "user:1", got, time.Minute))
}

func TestAside(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *cachedUser) func() error {
		return func() error {
			calls++
			*dest = cachedUser{ID: 7, Email: "ravi@example.com"}
			return nil
		}
	}

	var first cachedUser
	require.NoError(t, Aside(ctx, UserKey(7), &first, UserTTL, fetch(&first)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, uint(7), first.ID)

	// Second read is served from the cache, the loader does not run again.
	var second cachedUser
	require.NoError(t, Aside(ctx, UserKey(7), &second, UserTTL, fetch(&second)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "ravi@example.com", second.Email)
}

func TestAsideFallsThroughOnCacheError(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	// A corrupt cached value must not break the read path.
	require.NoError(t, mr.Set(UserKey(9), "{not json"))

	var got cachedUser
	err := Aside(ctx, UserKey(9), &got, UserTTL, func() error {
		got = cachedUser{ID: 9, Email: "meera@example.com"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, uint(9), got.ID)
}

func TestInvalidateUser(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, UserKey(3), cachedUser{ID: 3}, time.Minute))
	require.NoError(t, SetJSON(ctx, ProfileKey(3), cachedUser{ID: 3}, time.Minute))

	InvalidateUser(ctx, 3)

	assert.False(t, mr.Exists(UserKey(3)))
	assert.False(t, mr.Exists(ProfileKey(3)))
}
