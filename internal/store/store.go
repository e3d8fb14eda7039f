package store

import (
	"context"

	"github.com/arnav-motiramani/daily-doodles/pkg/types"
)

type UserStore interface {
	Create(ctx context.Context, data types.User) error
	GetUser(ctx context.Context, appid, id string) (*types.User, error)
	GetByEmail(ctx context.Context, appid, email string) (*types.User, error)
	UpdateProfile(ctx context.Context, appid, id, name, email string) error
}

type AccessTokenStore interface {
	Create(ctx context.Context, data types.AccessToken) error
	GetAccessToken(ctx context.Context, appid, token string) (*types.AccessToken, error)
	Delete(ctx context.Context, appid, token string) error
	ClearUserTokens(ctx context.Context, appid, userID string) error
	DeleteExpired(ctx context.Context, before int64) error
}

type EntryStore interface {
	Create(ctx context.Context, data types.Entry) error
	Get(ctx context.Context, userID, id string) (*types.Entry, error)
	List(ctx context.Context, userID string, page, pageSize uint64) ([]types.Entry, error)
	Update(ctx context.Context, userID, id string, draft types.EntryDraft) error
	Delete(ctx context.Context, userID, id string) error
	Total(ctx context.Context, userID string) (int64, error)
}
