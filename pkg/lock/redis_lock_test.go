package lock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinema-reservation/pkg/lock"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRedisLocker_Acquire(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	locker := lock.NewRedisLocker(db, "owner-1", zap.NewNop())
	ctx := context.Background()

	mockRedis.ExpectSetNX("lease", "owner-1", time.Minute).SetVal(true)
	mockRedis.ExpectSetNX("lease", "owner-1", time.Minute).SetVal(false)
	mockRedis.ExpectSetNX("lease", "owner-1", time.Minute).SetErr(errors.New("connection refused"))

	ok, err := locker.Acquire(ctx, "lease", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = locker.Acquire(ctx, "lease", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = locker.Acquire(ctx, "lease", time.Minute)
	assert.Error(t, err)

	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestRedisLocker_ReleaseChecksOwner(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	locker := lock.NewRedisLocker(db, "owner-1", zap.NewNop())

	mockRedis.Regexp().ExpectEval(`(?s)GET.*DEL`, []string{"lease"}, "owner-1").SetVal(int64(1))

	require.NoError(t, locker.Release(context.Background(), "lease"))
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestLocalLocker(t *testing.T) {
	locker := lock.NewLocalLocker()

	ok, err := locker.Acquire(context.Background(), "lease", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, locker.Release(context.Background(), "lease"))
}
