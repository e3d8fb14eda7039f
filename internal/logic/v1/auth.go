package v1

import (
	"context"
	"database/sql"
	"time"

	"github.com/arnav-motiramani/daily-doodles/internal/core"
	"github.com/arnav-motiramani/daily-doodles/internal/core/srv"
	"github.com/arnav-motiramani/daily-doodles/pkg/errors"
	"github.com/arnav-motiramani/daily-doodles/pkg/i18n"
	"github.com/arnav-motiramani/daily-doodles/pkg/security"
	"github.com/arnav-motiramani/daily-doodles/pkg/types"
)

type AuthLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewAuthLogic(ctx context.Context, core *core.Core) *AuthLogic {
	l := &AuthLogic{
		ctx:  ctx,
		core: core,
	}

	return l
}

func (l *AuthLogic) GetAccessTokenDetail(appid, token string) (*types.AccessToken, error) {
	data, err := l.core.Store().AccessTokenStore().GetAccessToken(l.ctx, appid, token)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("AuthLogic.GetAccessTokenDetail.AccessTokenStore.GetAccessToken", i18n.ERROR_INTERNAL, err)
	}

	return data, nil
}

// GenAccessToken 为用户签发新的登录凭证
func (l *AuthLogic) GenAccessToken(appid, desc string, user *types.User, expiresAt int64) (string, error) {
	claims := security.NewTokenClaims(appid, user.ID, user.Name, user.Email, expiresAt)
	claims.Fields["role"] = srv.RoleEditor

	accessToken, err := security.GenJWT(l.core.Cfg().Security.JWTSecret, claims)
	if err != nil {
		return "", errors.New("AuthLogic.GenAccessToken.GenJWT", i18n.ERROR_INTERNAL, err)
	}

	err = l.core.Store().AccessTokenStore().Create(l.ctx, types.AccessToken{
		Appid:     appid,
		UserID:    user.ID,
		Version:   types.DEFAULT_ACCESS_TOKEN_VERSION,
		Token:     accessToken,
		ExpiresAt: expiresAt,
		Info:      desc,
	})

	if err != nil {
		return "", errors.New("AuthLogic.GenAccessToken.Create", i18n.ERROR_INTERNAL, err)
	}

	return accessToken, nil
}

// RevokeAccessToken 注销当前登录凭证
func (l *AuthLogic) RevokeAccessToken(appid, token string) error {
	if err := l.core.Store().AccessTokenStore().Delete(l.ctx, appid, token); err != nil {
		return errors.New("AuthLogic.RevokeAccessToken.AccessTokenStore.Delete", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

func (l *AuthLogic) defaultTokenExpiresAt() int64 {
	day := l.core.Cfg().Security.TokenExpireDay
	if day <= 0 {
		day = 30
	}
	return time.Now().AddDate(0, 0, day).Unix()
}
