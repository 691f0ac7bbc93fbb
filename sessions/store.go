package sessions

import (
	"context"
	"errors"
)

// ErrSessionNotFound is returned when a session id has no stored
// session, either because it never existed or because it expired.
var ErrSessionNotFound = errors.New("session not found")

// Store keeps sessions between requests. Sessions are ephemeral:
// they live outside the durable order/user store and may expire.
type Store interface {
	Get(ctx context.Context, sessionID string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, sessionID string) error
}
