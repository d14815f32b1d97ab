package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"safetrack/config"
	deliverycontext "safetrack/internal/delivery/context"
	"safetrack/internal/domain/entity"
	"safetrack/internal/domain/repository"
	"safetrack/internal/errors"
	"safetrack/internal/infra/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	safeZoneKey = "safetrack:safe_zone:active"

	// Stored when no zone is active so the database is not asked on every fix.
	noZoneMarker = "none"
)

type safeZoneCache struct {
	next    repository.SafeZoneRepository
	client  *redis.Client
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewSafeZoneCache wraps next with a Redis read-through cache. Redis failures
// are logged and served from next. A nil client returns next unchanged.
func NewSafeZoneCache(next repository.SafeZoneRepository, client *redis.Client, ttl time.Duration, logger *slog.Logger, m *metrics.Metrics) repository.SafeZoneRepository {
	if client == nil {
		return next
	}

	return &safeZoneCache{
		next:    next,
		client:  client,
		ttl:     ttl,
		logger:  logger,
		metrics: m,
	}
}

// DecorateSafeZoneRepository is the fx decorator form of NewSafeZoneCache.
func DecorateSafeZoneRepository(next repository.SafeZoneRepository, client *redis.Client, cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) repository.SafeZoneRepository {
	if cfg.Redis == nil || client == nil {
		return next
	}

	return NewSafeZoneCache(next, client, cfg.Redis.SafeZoneTTL, logger, m)
}

func (c *safeZoneCache) GetActiveZone(ctx context.Context) (*entity.SafeZone, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)

	raw, err := c.client.Get(ctx, safeZoneKey).Result()
	switch {
	case err == nil:
		zone, decodeErr := decodeZone(raw)
		if decodeErr == nil {
			c.metrics.IncSafeZoneCache("hit")

			return zone, nil
		}
		logger.Warn("Discarding undecodable safe zone cache entry", slog.Any("error", decodeErr))
	case errors.Is(err, redis.Nil):
	default:
		logger.Warn("Safe zone cache read failed", slog.Any("error", err))
	}

	c.metrics.IncSafeZoneCache("miss")

	zone, err := c.next.GetActiveZone(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := encodeZone(zone)
	if err != nil {
		logger.Warn("Safe zone cache encode failed", slog.Any("error", err))

		return zone, nil
	}

	if err := c.client.Set(ctx, safeZoneKey, encoded, c.ttl).Err(); err != nil {
		logger.Warn("Safe zone cache write failed", slog.Any("error", err))
	}

	return zone, nil
}

func encodeZone(zone *entity.SafeZone) (string, error) {
	if zone == nil {
		return noZoneMarker, nil
	}

	data, err := json.Marshal(zone)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func decodeZone(raw string) (*entity.SafeZone, error) {
	if raw == noZoneMarker {
		return nil, nil
	}

	var zone entity.SafeZone
	if err := json.Unmarshal([]byte(raw), &zone); err != nil {
		return nil, err
	}
	if err := zone.Validate(); err != nil {
		return nil, err
	}

	return &zone, nil
}
