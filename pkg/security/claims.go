package security

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

type TokenClaims struct {
	Appid    string         `json:"appid"`
	User     string         `json:"user"`
	UserName string         `json:"user_name"`
	Email    string         `json:"email"`
	Fields   map[string]any `json:"fields,omitempty"`
	jwt.StandardClaims
}

func NewTokenClaims(appid, userID, userName, email string, expiresAt int64) TokenClaims {
	return TokenClaims{
		Appid:    appid,
		User:     userID,
		UserName: userName,
		Email:    email,
		Fields:   make(map[string]any),
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: expiresAt,
		},
	}
}

// GenJWT signs claims into the opaque token string stored alongside the
// access token row.
func GenJWT(secret string, claims TokenClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token claims: %w", err)
	}
	return signed, nil
}

// ParseJWT verifies the signature and returns the embedded claims.
func ParseJWT(secret, raw string) (*TokenClaims, error) {
	var claims TokenClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return &claims, nil
}

// ParseUnverifiedJWT decodes claims without checking the signature. Used
// after the token has already been matched against its stored row.
func ParseUnverifiedJWT(raw string) (*TokenClaims, error) {
	var claims TokenClaims
	parser := jwt.Parser{}
	if _, _, err := parser.ParseUnverified(raw, &claims); err != nil {
		return nil, err
	}
	return &claims, nil
}
