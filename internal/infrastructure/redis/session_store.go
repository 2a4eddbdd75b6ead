// Package redis guarda las sesiones en Redis para que sobrevivan reinicios y se
// compartan entre instancias de la API.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"github.com/jhoicas/MiNegocio-api/internal/domain/repository"
	"github.com/jhoicas/MiNegocio-api/pkg/config"
)

const keyPrefix = "minegocio:session:"

var _ repository.SessionStore = (*SessionStore)(nil)

// SessionStore una clave por sesión con TTL igual a la vida del token.
type SessionStore struct {
	client *goredis.Client
}

// NewClient abre el cliente y verifica la conexión con PING.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func NewSessionStore(client *goredis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Save(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, keyPrefix+sessionID, userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis set sesión: %w", err)
	}
	return nil
}

func (s *SessionStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	err := s.client.Get(ctx, keyPrefix+sessionID).Err()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get sesión: %w", err)
	}
	return true, nil
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("redis del sesión: %w", err)
	}
	return nil
}
