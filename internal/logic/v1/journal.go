package v1

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/samber/lo"

	"github.com/arnav-motiramani/daily-doodles/internal/core"
	"github.com/arnav-motiramani/daily-doodles/internal/core/srv"
	"github.com/arnav-motiramani/daily-doodles/pkg/errors"
	"github.com/arnav-motiramani/daily-doodles/pkg/i18n"
	"github.com/arnav-motiramani/daily-doodles/pkg/types"
	"github.com/arnav-motiramani/daily-doodles/pkg/utils"
)

type JournalLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewJournalLogic(ctx context.Context, core *core.Core) *JournalLogic {
	l := &JournalLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: setupUserInfo(ctx, core),
	}

	return l
}

// ListEntries 拉取失败时降级为空列表，日记首页不因存储抖动而报错
func (l *JournalLogic) ListEntries(page, pageSize uint64) ([]types.Entry, int64) {
	userID := l.GetUserInfo().User
	list, err := l.core.Store().EntryStore().List(l.ctx, userID, page, pageSize)
	if err != nil && err != sql.ErrNoRows {
		slog.Error("Failed to list journal entries, degrade to empty",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		return []types.Entry{}, 0
	}
	if list == nil {
		list = []types.Entry{}
	}

	total, err := l.core.Store().EntryStore().Total(l.ctx, userID)
	if err != nil && err != sql.ErrNoRows {
		slog.Error("Failed to count journal entries",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		total = int64(len(list))
	}
	return list, total
}

func (l *JournalLogic) GetEntry(id string) (*types.Entry, error) {
	userID := l.GetUserInfo().User
	entry, err := l.core.Store().EntryStore().Get(l.ctx, userID, id)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("JournalLogic.GetEntry.EntryStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if entry == nil {
		return nil, errors.New("JournalLogic.GetEntry.EntryStore.Get.nil", i18n.ERROR_NOTFOUND, nil).Code(http.StatusNotFound)
	}
	return entry, nil
}

// SaveEntry routes a draft to insert or update. Ids invented by the
// client for unsaved drafts are never trusted as persisted ids.
func (l *JournalLogic) SaveEntry(id string, draft types.EntryDraft) (*types.Entry, error) {
	if err := l.Identification(srv.PermissionEdit); err != nil {
		return nil, err
	}

	l.ensureAnalysis(&draft)

	if draft.Title == "" {
		draft.Title = types.DEFAULT_ENTRY_TITLE
	}

	userID := l.GetUserInfo().User
	store := l.core.Store().EntryStore()

	if types.IsPersistedEntryID(id) {
		if _, err := l.GetEntry(id); err != nil {
			return nil, err
		}
		if err := store.Update(l.ctx, userID, id, draft); err != nil {
			return nil, errors.New("JournalLogic.SaveEntry.EntryStore.Update", i18n.ERROR_INTERNAL, err)
		}
		return l.GetEntry(id)
	}

	now := time.Now().Unix()
	createdAt := draft.CreatedAt
	if createdAt == 0 {
		createdAt = now
	}
	entry := types.Entry{
		ID:        utils.GenSpecIDStr(),
		UserID:    userID,
		Title:     draft.Title,
		Content:   draft.Content,
		Mood:      draft.Mood,
		AIInsight: draft.AIInsight,
		Tags:      draft.Tags,
		CreatedAt: createdAt,
		UpdatedAt: now,
	}
	if err := store.Create(l.ctx, entry); err != nil {
		return nil, errors.New("JournalLogic.SaveEntry.EntryStore.Create", i18n.ERROR_INTERNAL, err)
	}
	return &entry, nil
}

// ensureAnalysis fills missing mood/insight before the entry lands. The
// analyze path never fails outward, so neither does saving.
func (l *JournalLogic) ensureAnalysis(draft *types.EntryDraft) {
	if draft.Content == "" || (draft.Mood != "" && draft.AIInsight != "") {
		return
	}
	result := NewAssistantLogic(l.ctx, l.core).AnalyzeEntry(draft.Content)
	if draft.Mood == "" {
		draft.Mood = result.Mood
	}
	if draft.AIInsight == "" {
		draft.AIInsight = result.Insight
	}
}

func (l *JournalLogic) DeleteEntry(id string) error {
	if err := l.Identification(srv.PermissionEdit); err != nil {
		return err
	}
	userID := l.GetUserInfo().User
	if err := l.core.Store().EntryStore().Delete(l.ctx, userID, id); err != nil {
		return errors.New("JournalLogic.DeleteEntry.EntryStore.Delete", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

// Stats aggregates over the full entry list.
// TODO: streak still counts entries instead of consecutive days, switch
// to a created_at day-window walk once the web client drops the same
// shortcut.
func (l *JournalLogic) Stats() (types.EntryStats, error) {
	userID := l.GetUserInfo().User
	entries, err := l.core.Store().EntryStore().List(l.ctx, userID, 0, 0)
	if err != nil && err != sql.ErrNoRows {
		return types.EntryStats{}, errors.New("JournalLogic.Stats.EntryStore.List", i18n.ERROR_INTERNAL, err)
	}

	return aggregateStats(entries), nil
}

// aggregateStats expects entries ordered created_at DESC.
func aggregateStats(entries []types.Entry) types.EntryStats {
	stats := types.EntryStats{
		Total:       len(entries),
		Streak:      len(entries),
		PrimaryMood: types.DEFAULT_PRIMARY_MOOD,
	}
	if len(entries) == 0 {
		return stats
	}

	stats.LastWrittenAt = entries[0].CreatedAt

	moods := lo.Filter(lo.Map(entries, func(e types.Entry, _ int) string {
		return e.Mood
	}), func(m string, _ int) bool {
		return m != ""
	})
	if len(moods) == 0 {
		return stats
	}

	counts := lo.CountValues(moods)
	best := ""
	for _, m := range moods { // 并列时取先出现的
		if best == "" || counts[m] > counts[best] {
			best = m
		}
	}
	stats.PrimaryMood = best
	return stats
}
