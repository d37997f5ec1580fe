package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tu-usuario/suscripciones-api/internal/application/auth"
	"github.com/tu-usuario/suscripciones-api/pkg/config"
)

// Asegura que TokenStore implementa auth.TokenStore.
var _ auth.TokenStore = (*TokenStore)(nil)

// NewClient crea el cliente Redis y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// TokenStore lista de revocación de tokens JWT sobre Redis.
// Cada jti revocado vive hasta la expiración natural del token (TTL),
// así la lista no crece sin límite.
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore construye el store con un cliente Redis ya conectado.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

func revokedKey(jti string) string {
	return "revoked_token:" + jti
}

// Revoke marca el jti como revocado hasta que el token expire.
func (s *TokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token ya expirado: nada que revocar.
		return nil
	}
	if err := s.client.Set(ctx, revokedKey(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked informa si el jti fue revocado.
func (s *TokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return n > 0, nil
}
