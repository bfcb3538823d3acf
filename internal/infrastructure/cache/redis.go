package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/S-FND/esg-core-api/internal/application/analytics"
	"github.com/S-FND/esg-core-api/internal/application/collection"
	"github.com/S-FND/esg-core-api/internal/domain"
	"github.com/S-FND/esg-core-api/internal/domain/repository"
	"github.com/S-FND/esg-core-api/pkg/config"
	"github.com/S-FND/esg-core-api/pkg/logger"
)

const dashboardTTL = 10 * time.Minute

var (
	_ repository.DraftRepository  = (*RedisStore)(nil)
	_ analytics.DashboardCache    = (*RedisStore)(nil)
	_ collection.CacheInvalidator = (*RedisStore)(nil)
)

// RedisStore adaptador Redis para los dos usos de KV del sistema: borradores
// de captura (TTL largo, clave compuesta del dominio) y caché del resumen del
// dashboard (TTL corto, invalidación por tenant).
type RedisStore struct {
	rdb *redis.Client
	log *logger.Logger
}

// NewRedisStore conecta el cliente y verifica la conexión.
func NewRedisStore(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisStore{rdb: rdb, log: log}, nil
}

// Close cierra la conexión.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

// ── Borradores de captura ─────────────────────────────────────────────────────

// Get devuelve el borrador almacenado bajo key, o domain.ErrNotFound.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.rdb.Get(ctx, "draft:"+key).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

// Put guarda el borrador con su TTL.
func (s *RedisStore) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, "draft:"+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete descarta el borrador.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, "draft:"+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// ── Caché del dashboard ───────────────────────────────────────────────────────

func dashboardKey(companyID, reportingPeriod string) string {
	return fmt.Sprintf("dashboard:%s:%s", companyID, reportingPeriod)
}

// Get devuelve el resumen cacheado del tenant para un año, si existe.
func (s *RedisStore) GetDashboard(ctx context.Context, companyID, reportingPeriod string) ([]byte, bool, error) {
	val, err := s.rdb.Get(ctx, dashboardKey(companyID, reportingPeriod)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get dashboard: %w", err)
	}
	return val, true, nil
}

// SetDashboard cachea el resumen serializado con TTL corto.
func (s *RedisStore) SetDashboard(ctx context.Context, companyID, reportingPeriod string, payload []byte) error {
	if err := s.rdb.Set(ctx, dashboardKey(companyID, reportingPeriod), payload, dashboardTTL).Err(); err != nil {
		return fmt.Errorf("redis set dashboard: %w", err)
	}
	return nil
}

// InvalidateDashboard borra todas las llaves de dashboard del tenant. Un error
// aquí solo se loguea: la caché expira sola por TTL y los datos persistidos ya
// están en la base.
func (s *RedisStore) InvalidateDashboard(ctx context.Context, companyID string) {
	pattern := fmt.Sprintf("dashboard:%s:*", companyID)
	iter := s.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := s.rdb.Del(ctx, iter.Val()).Err(); err != nil && s.log != nil {
			s.log.Warn().Err(err).Str("key", iter.Val()).Msg("invalidación de caché fallida")
		}
	}
	if err := iter.Err(); err != nil && s.log != nil {
		s.log.Warn().Err(err).Str("company_id", companyID).Msg("scan de caché fallido")
	}
}
