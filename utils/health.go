package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"ginmongo/dates"
)

// HealthCheck reports whether a dependency answers.
type HealthCheck func(ctx context.Context) error

// MongoCheck pings the Mongo deployment.
func MongoCheck(client *mongo.Client) HealthCheck {
	return func(ctx context.Context) error {
		return client.Ping(ctx, nil)
	}
}

// RedisCheck pings the Redis server.
func RedisCheck(client *redis.Client) HealthCheck {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool            `json:"mongo"`
	Redis     bool            `json:"redis"`
	CheckedAt dates.Timestamp `json:"checkedAt"`
}

// Healthy reports whether every dependency answered on the last check.
func (s HealthStatus) Healthy() bool {
	return s.Mongo && s.Redis
}

// HealthMonitor keeps the latest HealthStatus in memory. A nil check is
// reported as unhealthy.
type HealthMonitor struct {
	Mongo HealthCheck
	Redis HealthCheck
	Clock dates.Clock

	mu      sync.RWMutex
	current HealthStatus
}

// GetHealthStatus returns latest stored health snapshot.
func (m *HealthMonitor) GetHealthStatus() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// CheckNow runs both checks once and stores the result.
func (m *HealthMonitor) CheckNow(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := HealthStatus{
		Mongo:     run(ctx, "mongo", m.Mongo),
		Redis:     run(ctx, "redis", m.Redis),
		CheckedAt: dates.NowTimestamp(m.Clock),
	}

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

func run(ctx context.Context, name string, check HealthCheck) bool {
	if check == nil {
		return false
	}
	if err := check(ctx); err != nil {
		zap.L().Warn("health check failed", zap.String("dependency", name), zap.Error(err))
		return false
	}
	return true
}

// Start performs periodic health checks until ctx is cancelled.
func (m *HealthMonitor) Start(ctx context.Context, interval time.Duration) {
	m.CheckNow(ctx)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.CheckNow(ctx)
			}
		}
	}()
}
