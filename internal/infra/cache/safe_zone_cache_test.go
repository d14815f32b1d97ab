package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"safetrack/internal/domain/entity"
	"safetrack/internal/infra/metrics"
	mockRepo "safetrack/internal/mocks/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func createTestCache(t *testing.T, client *redis.Client) (*mockRepo.MockSafeZoneRepository, *safeZoneCache) {
	t.Helper()

	next := mockRepo.NewMockSafeZoneRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()

	repo := NewSafeZoneCache(next, client, time.Minute, logger, metrics.NewWithRegistry(reg, reg))
	cached, ok := repo.(*safeZoneCache)
	require.True(t, ok)

	return next, cached
}

func campus() *entity.SafeZone {
	return &entity.SafeZone{
		ID:           uuid.New(),
		Name:         "Main campus",
		CenterLat:    14.5995,
		CenterLng:    120.9842,
		RadiusMeters: 250,
		IsActive:     true,
	}
}

func TestSafeZoneCache_MissThenHit(t *testing.T) {
	mr, client := setupTestRedis(t)
	next, cache := createTestCache(t, client)
	ctx := context.Background()
	zone := campus()

	next.EXPECT().GetActiveZone(mock.Anything).Return(zone, nil).Once()

	first, err := cache.GetActiveZone(ctx)
	require.NoError(t, err)
	assert.Equal(t, zone.ID, first.ID)
	assert.True(t, mr.Exists(safeZoneKey))

	second, err := cache.GetActiveZone(ctx)
	require.NoError(t, err)
	assert.Equal(t, zone.ID, second.ID)
	assert.Equal(t, zone.RadiusMeters, second.RadiusMeters)
}

func TestSafeZoneCache_CachesAbsentZone(t *testing.T) {
	mr, client := setupTestRedis(t)
	next, cache := createTestCache(t, client)
	ctx := context.Background()

	next.EXPECT().GetActiveZone(mock.Anything).Return(nil, nil).Once()

	zone, err := cache.GetActiveZone(ctx)
	require.NoError(t, err)
	assert.Nil(t, zone)

	stored, err := mr.Get(safeZoneKey)
	require.NoError(t, err)
	assert.Equal(t, noZoneMarker, stored)

	zone, err = cache.GetActiveZone(ctx)
	require.NoError(t, err)
	assert.Nil(t, zone)
}

func TestSafeZoneCache_ExpiresAfterTTL(t *testing.T) {
	mr, client := setupTestRedis(t)
	next, cache := createTestCache(t, client)
	ctx := context.Background()

	next.EXPECT().GetActiveZone(mock.Anything).Return(campus(), nil).Twice()

	_, err := cache.GetActiveZone(ctx)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = cache.GetActiveZone(ctx)
	require.NoError(t, err)
}

func TestSafeZoneCache_FallsBackWhenRedisDown(t *testing.T) {
	mr, client := setupTestRedis(t)
	next, cache := createTestCache(t, client)
	zone := campus()

	mr.Close()
	next.EXPECT().GetActiveZone(mock.Anything).Return(zone, nil).Once()

	got, err := cache.GetActiveZone(context.Background())
	require.NoError(t, err)
	assert.Equal(t, zone.ID, got.ID)
}

func TestSafeZoneCache_PropagatesStoreError(t *testing.T) {
	mr, client := setupTestRedis(t)
	next, cache := createTestCache(t, client)
	storeErr := errors.New("connection refused")

	next.EXPECT().GetActiveZone(mock.Anything).Return(nil, storeErr).Once()

	_, err := cache.GetActiveZone(context.Background())
	assert.ErrorIs(t, err, storeErr)
	assert.False(t, mr.Exists(safeZoneKey))
}

func TestSafeZoneCache_IgnoresInvalidCachedZone(t *testing.T) {
	mr, client := setupTestRedis(t)
	next, cache := createTestCache(t, client)
	zone := campus()

	require.NoError(t, mr.Set(safeZoneKey, `{"center_lat":14.5995,"center_lng":120.9842,"radius_meters":0,"is_active":true}`))
	next.EXPECT().GetActiveZone(mock.Anything).Return(zone, nil).Once()

	got, err := cache.GetActiveZone(context.Background())
	require.NoError(t, err)
	assert.Equal(t, zone.ID, got.ID)
	assert.Equal(t, zone.RadiusMeters, got.RadiusMeters)
}

func TestSafeZoneCache_DoesNotCacheInvalidZone(t *testing.T) {
	mr, client := setupTestRedis(t)
	next, cache := createTestCache(t, client)

	next.EXPECT().GetActiveZone(mock.Anything).Return(nil, errors.Wrap(entity.ErrInvalidSafeZone, "radius 0")).Once()

	_, err := cache.GetActiveZone(context.Background())
	assert.ErrorIs(t, err, entity.ErrInvalidSafeZone)
	assert.False(t, mr.Exists(safeZoneKey))
}

func TestNewSafeZoneCache_NilClientReturnsNext(t *testing.T) {
	next := mockRepo.NewMockSafeZoneRepository(t)

	repo := NewSafeZoneCache(next, nil, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	assert.Same(t, next, repo)
}
