package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/arnav-motiramani/daily-doodles/pkg/register"
	"github.com/arnav-motiramani/daily-doodles/pkg/sqlstore"
	"github.com/arnav-motiramani/daily-doodles/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.EntryStore = NewEntryStore(provider)
	})
}

// EntryStore 处理dd_entry表的操作
type EntryStore struct {
	sqlstore.CommonFields
}

func NewEntryStore(provider sqlstore.SqlProviderAchieve) *EntryStore {
	repo := &EntryStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_ENTRY)
	repo.SetAllColumns("id", "user_id", "title", "content", "mood", "ai_insight", "tags", "created_at", "updated_at")
	return repo
}

// Create 保存一条新的日记
func (s *EntryStore) Create(ctx context.Context, data types.Entry) error {
	now := time.Now().Unix()
	if data.CreatedAt == 0 {
		data.CreatedAt = now
	}
	if data.UpdatedAt == 0 {
		data.UpdatedAt = now
	}
	if data.Tags == nil {
		data.Tags = pq.StringArray{}
	}
	query := sq.Insert(s.GetTable()).
		Columns(s.GetAllColumns()...).
		Values(data.ID, data.UserID, data.Title, data.Content, data.Mood, data.AIInsight, data.Tags, data.CreatedAt, data.UpdatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *EntryStore) Get(ctx context.Context, userID, id string) (*types.Entry, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Entry
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// List 按时间倒序返回用户的日记，page为0时返回全部
func (s *EntryStore) List(ctx context.Context, userID string, page, pageSize uint64) ([]types.Entry, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")
	if page > 0 && pageSize > 0 {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Entry
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *EntryStore) Update(ctx context.Context, userID, id string, draft types.EntryDraft) error {
	query := sq.Update(s.GetTable()).
		Set("title", draft.Title).
		Set("content", draft.Content).
		Set("mood", draft.Mood).
		Set("ai_insight", draft.AIInsight).
		Set("tags", pq.StringArray(draft.Tags)).
		Set("updated_at", time.Now().Unix()).
		Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *EntryStore) Delete(ctx context.Context, userID, id string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *EntryStore) Total(ctx context.Context, userID string) (int64, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable()).Where(sq.Eq{"user_id": userID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	var total int64
	if err = s.GetReplica(ctx).Get(&total, queryString, args...); err != nil {
		return 0, err
	}
	return total, nil
}
