package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Session{}))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := NewSessionRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, repo.Put(ctx, "s1", "tok-a", nil))
	tok, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "tok-a", tok)

	// upsert replaces the token of the same session
	require.NoError(t, repo.Put(ctx, "s1", "tok-b", nil))
	tok, err = repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "tok-b", tok)

	require.NoError(t, repo.Delete(ctx, "s1"))
	_, err = repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepositoryExpiry(t *testing.T) {
	repo := NewSessionRepository(setupTestDB(t))
	ctx := context.Background()

	past := time.Now().Add(-time.Minute)
	future := time.Now().Add(time.Hour)
	require.NoError(t, repo.Put(ctx, "old", "tok-old", &past))
	require.NoError(t, repo.Put(ctx, "new", "tok-new", &future))
	require.NoError(t, repo.Put(ctx, "forever", "tok-forever", nil))

	_, err := repo.Get(ctx, "old")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, repo.Put(ctx, "old2", "tok-old2", &past))
	n, err := repo.PurgeExpired(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	tok, err := repo.Get(ctx, "new")
	require.NoError(t, err)
	assert.Equal(t, "tok-new", tok)
	tok, err = repo.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, "tok-forever", tok)
}

func TestRedisSessionRepository(t *testing.T) {
	mr, client := setupTestRedis(t)
	repo := NewRedisSessionRepository(client, 30*time.Minute)
	ctx := context.Background()

	_, err := repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, repo.Put(ctx, "s1", "tok-a", nil))
	assert.True(t, mr.Exists("storefront:session:s1"))
	assert.Equal(t, 30*time.Minute, mr.TTL("storefront:session:s1"))

	tok, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "tok-a", tok)

	mr.FastForward(31 * time.Minute)
	_, err = repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisSessionRepositoryHonoursExpiry(t *testing.T) {
	mr, client := setupTestRedis(t)
	repo := NewRedisSessionRepository(client, 30*time.Minute)
	ctx := context.Background()

	soon := time.Now().Add(5 * time.Minute)
	require.NoError(t, repo.Put(ctx, "s1", "tok", &soon))
	ttl := mr.TTL("storefront:session:s1")
	assert.True(t, ttl > 4*time.Minute && ttl <= 5*time.Minute, "ttl %s", ttl)

	past := time.Now().Add(-time.Second)
	require.NoError(t, repo.Put(ctx, "s1", "tok", &past))
	assert.False(t, mr.Exists("storefront:session:s1"))

	require.NoError(t, repo.Put(ctx, "s2", "tok2", nil))
	require.NoError(t, repo.Delete(ctx, "s2"))
	_, err := repo.Get(ctx, "s2")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
