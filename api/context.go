package api

import (
	"context"

	"github.com/gopalnp/personal-site-backend/models"
)

type keyType string

const principalKey keyType = "principal"

// ctxWithPrincipal attaches the authenticated principal to the context.
func ctxWithPrincipal(ctx context.Context, principal models.Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// principalFromCtx retrieves the principal from the context. A zero
// Principal means the request carries no session.
func principalFromCtx(ctx context.Context) models.Principal {
	if value := ctx.Value(principalKey); value != nil {
		if principal, ok := value.(models.Principal); ok {
			return principal
		}
	}
	return models.Principal{}
}
