package app

import (
	"context"
	"strings"

	"github.com/jcmexdev/storefront-client/internal/storefront/core/domain/entity"
)

// LogIn trims the raw username and, if anything remains, starts an
// authenticated session and moves to the store view. An empty value is
// ignored with no state change. The first activation for a given user also
// runs the parallel bootstrap; switching back to the same user does not
// re-fetch.
func (a *App) LogIn(ctx context.Context, rawUsername string) bool {
	username := strings.TrimSpace(rawUsername)
	if username == "" {
		return false
	}

	a.mu.Lock()
	a.userID = username
	a.view = entity.ViewStore
	a.errMsg = ""
	needsBootstrap := a.bootstrappedFor != username
	if needsBootstrap {
		a.bootstrappedFor = username
	}
	a.mu.Unlock()

	if needsBootstrap {
		a.bootstrap(ctx, username)
	}
	return true
}
