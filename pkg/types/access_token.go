package types

import (
	"github.com/arnav-motiramani/daily-doodles/pkg/security"
)

const DEFAULT_ACCESS_TOKEN_VERSION = "v1"

type AccessToken struct {
	ID        int64  `json:"id" db:"id"`
	Appid     string `json:"appid" db:"appid"`
	UserID    string `json:"user_id" db:"user_id"`
	Version   string `json:"version" db:"version"`
	Token     string `json:"token" db:"token"`
	Info      string `json:"info" db:"info"`
	ExpiresAt int64  `json:"expires_at" db:"expires_at"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
}

// TokenClaims decodes the claims carried inside the token string. The
// row lookup already proved the token is ours, so no signature check
// happens here.
func (t *AccessToken) TokenClaims() (*security.TokenClaims, error) {
	return security.ParseUnverifiedJWT(t.Token)
}
