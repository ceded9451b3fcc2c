package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	dir := t.TempDir()

	testCases := []struct {
		description string
		URL         string
		options     []OpenOption
		expectType  interface{}
		expectErr   bool
	}{
		{description: "memory", URL: "memory://", expectType: &memoryStore{}},
		{description: "empty defaults to memory", URL: "", expectType: &memoryStore{}},
		{description: "file path", URL: filepath.Join(dir, "session.json"), expectType: &FileStore{}},
		{description: "secret file", URL: "secret://" + filepath.Join(dir, "session.enc"), expectType: &SecretStore{}},
		{description: "redis with address", URL: "redis://" + mr.Addr() + "/edulearn:test?ttl=1h", expectType: &RedisStore{}},
		{description: "redis with default address", URL: "redis://", options: []OpenOption{WithRedisAddr(mr.Addr()), WithRedisKey("k")}, expectType: &RedisStore{}},
		{description: "redis invalid ttl", URL: "redis://" + mr.Addr() + "/k?ttl=later", expectErr: true},
		{description: "secret without location", URL: "secret://", expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			aStore, err := Open(tc.URL, tc.options...)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tc.expectType, aStore)
			require.NoError(t, aStore.Save(context.Background(), "A1", "R1"))
			session, ok, err := aStore.Read(context.Background())
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "R1", session.RefreshToken)
		})
	}
	assert.Equal(t, time.Hour, mr.TTL("edulearn:test"))
}
