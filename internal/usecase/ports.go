package usecase

import (
	"context"

	"github.com/mainul35/dynamic-site-builder-sub000/internal/emit"
)

// Fetcher retrieves the bytes of a remote asset. Timeouts are the
// implementation's concern; any error means "asset unavailable".
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// PluginRegistry is consulted before the built-in emitters.
type PluginRegistry = emit.PluginRegistry
