package repository

import (
	"context"
	"time"
)

// SessionStore guarda las sesiones vivas (jti del JWT). Cerrar sesión la borra
// aunque el token siga sin expirar.
type SessionStore interface {
	Save(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	// Exists devuelve false si la sesión expiró o fue cerrada.
	Exists(ctx context.Context, sessionID string) (bool, error)
	Delete(ctx context.Context, sessionID string) error
}
