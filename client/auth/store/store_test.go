package store

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStores(t *testing.T) map[string]Store {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	dir := t.TempDir()
	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(filepath.Join(dir, "session.json")),
		"redis":  NewRedisStore(rdb, "edulearn:session"),
		"secret": NewSecretStore(filepath.Join(dir, "session.enc"), ""),
	}
}

func TestStore_SaveRead(t *testing.T) {
	ctx := context.Background()
	for name, aStore := range newTestStores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := aStore.Read(ctx)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, aStore.Save(ctx, "A1", "R1"))
			session, ok, err := aStore.Read(ctx)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "A1", session.AccessToken)
			assert.Equal(t, "R1", session.RefreshToken)

			require.NoError(t, aStore.Save(ctx, "A2", "R1"))
			session, ok, err = aStore.Read(ctx)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, &Session{AccessToken: "A2", RefreshToken: "R1"}, session)
		})
	}
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	for name, aStore := range newTestStores(t) {
		t.Run(name, func(t *testing.T) {
			// clearing an empty store is a no-op
			require.NoError(t, aStore.Clear(ctx))

			require.NoError(t, aStore.Save(ctx, "A1", "R1"))
			require.NoError(t, aStore.Clear(ctx))
			_, ok, err := aStore.Read(ctx)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, aStore.Clear(ctx))
		})
	}
}

func TestStore_RejectsIncompleteSession(t *testing.T) {
	ctx := context.Background()
	for name, aStore := range newTestStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, aStore.Save(ctx, "A1", "R1"))
			assert.ErrorIs(t, aStore.Save(ctx, "A2", ""), ErrIncompleteSession)
			assert.ErrorIs(t, aStore.Save(ctx, "", "R2"), ErrIncompleteSession)

			session, ok, err := aStore.Read(ctx)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "A1", session.AccessToken)
			assert.Equal(t, "R1", session.RefreshToken)
		})
	}
}

func TestRedisStore_TTL(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	ctx := context.Background()

	aStore := NewRedisStore(rdb, "session", WithTTL(time.Minute))
	require.NoError(t, aStore.Save(ctx, "A1", "R1"))
	assert.Equal(t, time.Minute, mr.TTL("session"))

	mr.FastForward(2 * time.Minute)
	_, ok, err := aStore.Read(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSession_Token(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": expiry.Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	var testCases = []struct {
		description string
		access      string
		expiry      time.Time
		valid       bool
	}{
		{description: "jwt access token", access: access, expiry: expiry, valid: true},
		{description: "opaque access token", access: "opaque", expiry: time.Time{}, valid: true},
	}
	for _, testCase := range testCases {
		session := &Session{AccessToken: testCase.access, RefreshToken: "R1"}
		token := session.Token()
		assert.True(t, testCase.expiry.Equal(token.Expiry), testCase.description)
		assert.Equal(t, "Bearer", token.TokenType, testCase.description)
		assert.Equal(t, "R1", token.RefreshToken, testCase.description)
		assert.Equal(t, testCase.valid, token.Valid(), testCase.description)
	}
}

func TestTokenSource(t *testing.T) {
	ctx := context.Background()
	aStore := NewMemoryStore()
	source := TokenSource(ctx, aStore)

	_, err := source.Token()
	assert.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, aStore.Save(ctx, "A1", "R1"))
	token, err := source.Token()
	require.NoError(t, err)
	assert.Equal(t, "A1", token.AccessToken)
}

func TestFileStore_ConcurrentInstances(t *testing.T) {
	ctx := context.Background()
	location := filepath.Join(t.TempDir(), "session.json")
	writer, reader := NewFileStore(location), NewFileStore(location)
	require.NoError(t, writer.Save(ctx, "A0", "R0"))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 300; i++ {
			if err := writer.Save(ctx, "A"+strconv.Itoa(i), "R0"); err != nil {
				t.Error(err)
				return
			}
		}
	}()
	reads := 0
	for running := true; running; reads++ {
		select {
		case <-done:
			running = false
		default:
		}
		session, ok, err := reader.Read(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "R0", session.RefreshToken)
	}
	assert.Greater(t, reads, 0)

	matches, err := filepath.Glob(location + ".*.tmp")
	require.NoError(t, err)
	assert.Empty(t, matches)
}
