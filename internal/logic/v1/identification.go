package v1

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/arnav-motiramani/daily-doodles/internal/core"
	"github.com/arnav-motiramani/daily-doodles/internal/core/srv"
	"github.com/arnav-motiramani/daily-doodles/pkg/errors"
	"github.com/arnav-motiramani/daily-doodles/pkg/i18n"
	"github.com/arnav-motiramani/daily-doodles/pkg/security"
)

type _userInfo struct {
	ctx  context.Context
	core *core.Core
	u    *security.TokenClaims
}

func (u *_userInfo) GetUserInfo() security.TokenClaims {
	return *u.u
}

// Role 取token中携带的角色，老token没有该字段时按编辑者处理
func (u *_userInfo) Role() string {
	if role, ok := u.u.Fields["role"].(string); ok && role != "" {
		return role
	}
	return srv.RoleEditor
}

func (u *_userInfo) Identification(permission string) error {
	if !u.core.Srv().RBAC().CheckPermission(u.Role(), permission) {
		return errors.New("_userInfo.Identification.CheckPermission", i18n.ERROR_PERMISSION_DENIED, nil).Code(http.StatusForbidden)
	}
	return nil
}

func setupUserInfo(ctx context.Context, core *core.Core) UserInfo {
	userInfo, ok := InjectTokenClaim(ctx)
	if !ok {
		slog.Error("Not found user in context", slog.String("component", "logic.v1.setupUserInfo"))
		userInfo = security.TokenClaims{}
	}
	return &_userInfo{
		ctx:  ctx,
		u:    &userInfo,
		core: core,
	}
}

type UserInfo interface {
	GetUserInfo() security.TokenClaims
	Role() string
	Identification(permission string) error
}
