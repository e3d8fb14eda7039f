package v1

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/arnav-motiramani/daily-doodles/internal/core"
	"github.com/arnav-motiramani/daily-doodles/pkg/errors"
	"github.com/arnav-motiramani/daily-doodles/pkg/i18n"
	"github.com/arnav-motiramani/daily-doodles/pkg/types"
	"github.com/arnav-motiramani/daily-doodles/pkg/utils"
)

type UserLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewUserLogic(ctx context.Context, core *core.Core) *UserLogic {
	l := &UserLogic{
		ctx:  ctx,
		core: core,
	}

	return l
}

func (l *UserLogic) GetUser(appid, id string) (*types.User, error) {
	user, err := l.core.Store().UserStore().GetUser(l.ctx, appid, id)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("UserLogic.GetUser.UserStore.GetUser", i18n.ERROR_INTERNAL, err)
	}
	if user == nil {
		return nil, errors.New("UserLogic.GetUser.UserStore.GetUser.nil", i18n.ERROR_NOTFOUND, nil).Code(http.StatusNotFound)
	}
	return user, nil
}

type SignupResult struct {
	User        *types.User
	AccessToken string
}

// Register creates the auth identity and the profile in one transaction
// and signs the first access token for it.
func (l *UserLogic) Register(appid, name, email, password string) (SignupResult, error) {
	userStore := l.core.Store().UserStore()

	exist, err := userStore.GetByEmail(l.ctx, appid, email)
	if err != nil && err != sql.ErrNoRows {
		return SignupResult{}, errors.New("UserLogic.Register.UserStore.GetByEmail", i18n.ERROR_INTERNAL, err)
	}
	if exist != nil {
		return SignupResult{}, errors.New("UserLogic.Register.GetByEmail.exist", i18n.ERROR_EMAIL_ALREADY_REGISTED, nil).Code(http.StatusConflict)
	}

	if name == "" {
		name = types.DEFAULT_USER_NAME
	}

	salt := utils.RandomStr(10)
	now := time.Now().Unix()
	user := &types.User{
		ID:        utils.GenSpecIDStr(),
		Appid:     appid,
		Name:      name,
		Email:     email,
		Salt:      salt,
		Password:  utils.GenUserPassword(salt, password),
		UpdatedAt: now,
		CreatedAt: now,
	}

	var accessToken string
	err = l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if err := userStore.Create(ctx, *user); err != nil {
			return errors.New("UserLogic.Register.UserStore.Create", i18n.ERROR_INTERNAL, err)
		}

		authLogic := NewAuthLogic(ctx, l.core)
		accessToken, err = authLogic.GenAccessToken(appid, "signup", user, authLogic.defaultTokenExpiresAt())
		if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return SignupResult{}, err
	}

	return SignupResult{
		User:        user,
		AccessToken: accessToken,
	}, nil
}

// Login verifies the password and issues a fresh access token.
func (l *UserLogic) Login(appid, email, password string) (SignupResult, error) {
	user, err := l.core.Store().UserStore().GetByEmail(l.ctx, appid, email)
	if err != nil && err != sql.ErrNoRows {
		return SignupResult{}, errors.New("UserLogic.Login.UserStore.GetByEmail", i18n.ERROR_INTERNAL, err)
	}
	if user == nil {
		return SignupResult{}, errors.New("UserLogic.Login.GetByEmail.nil", i18n.ERROR_INVALID_ACCOUNT, nil).Code(http.StatusForbidden)
	}

	if user.Password != utils.GenUserPassword(user.Salt, password) {
		return SignupResult{}, errors.New("UserLogic.Login.password", i18n.ERROR_INVALID_ACCOUNT, nil).Code(http.StatusForbidden)
	}

	if user.Name == "" {
		user.Name = types.DEFAULT_USER_NAME
	}

	authLogic := NewAuthLogic(l.ctx, l.core)
	accessToken, err := authLogic.GenAccessToken(appid, "login", user, authLogic.defaultTokenExpiresAt())
	if err != nil {
		return SignupResult{}, err
	}

	return SignupResult{
		User:        user,
		AccessToken: accessToken,
	}, nil
}

type AuthedUserLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewAuthedUserLogic(ctx context.Context, core *core.Core) *AuthedUserLogic {
	l := &AuthedUserLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: setupUserInfo(ctx, core),
	}

	return l
}

func (l *AuthedUserLogic) GetUser() (*types.User, error) {
	claims := l.GetUserInfo()
	return NewUserLogic(l.ctx, l.core).GetUser(claims.Appid, claims.User)
}

// UpdateUserProfile 更新用户资料
func (l *AuthedUserLogic) UpdateUserProfile(name, email string) error {
	claims := l.GetUserInfo()
	if err := l.core.Store().UserStore().UpdateProfile(l.ctx, claims.Appid, claims.User, name, email); err != nil {
		return errors.New("AuthedUserLogic.UpdateUserProfile.UserStore.UpdateProfile", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

// Logout revokes the presented token only.
func (l *AuthedUserLogic) Logout(token string) error {
	claims := l.GetUserInfo()
	return NewAuthLogic(l.ctx, l.core).RevokeAccessToken(claims.Appid, token)
}
