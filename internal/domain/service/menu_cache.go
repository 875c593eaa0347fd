package service

import (
	"context"

	"cardapio/internal/errors"
)

// ErrCacheMiss reports that no cached menu exists for a slug. A miss is
// not a failure; callers fall through to the database.
var ErrCacheMiss = errors.New("menu cache miss")

// MenuCache holds rendered public menus keyed by tenant slug. Entries
// are short-lived; mutations to menu data do not reach the cache, only
// tenant profile updates invalidate explicitly.
type MenuCache interface {
	// GetMenu returns the cached payload or ErrCacheMiss.
	GetMenu(ctx context.Context, slug string) ([]byte, error)

	// SetMenu stores a payload under the cache's configured TTL.
	SetMenu(ctx context.Context, slug string, payload []byte) error

	// InvalidateMenu drops the entry for a slug, if any.
	InvalidateMenu(ctx context.Context, slug string) error
}
