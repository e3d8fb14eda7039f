package v1

import (
	"context"

	"github.com/arnav-motiramani/daily-doodles/pkg/security"
)

const (
	TOKEN_CONTEXT_KEY = "__doodles.access_token"
	LANGUAGE_KEY      = "__doodles.accept_language"
)

// InjectTokenClaim get user token claims from context
func InjectTokenClaim(ctx context.Context) (security.TokenClaims, bool) {
	val, ok := ctx.Value(TOKEN_CONTEXT_KEY).(security.TokenClaims)
	return val, ok
}

func InjectLanguage(ctx context.Context) (string, bool) {
	val, ok := ctx.Value(LANGUAGE_KEY).(string)
	return val, ok
}
