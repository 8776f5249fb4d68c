package storage

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned by Get when no blob is stored under the key.
var ErrNotFound = errors.New("storage: key not found")

const (
	KeyMenu     = "menu"
	KeySettings = "settings"
	cartPrefix  = "cart:"
)

// Store is the key-value shim holding serialized storefront blobs.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// CartKey returns the blob key for a session's cart.
func CartKey(sessionID string) string {
	return cartPrefix + strings.TrimSpace(sessionID)
}
