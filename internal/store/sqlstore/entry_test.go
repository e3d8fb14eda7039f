package sqlstore_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arnav-motiramani/daily-doodles/internal/store/sqlstore"
	"github.com/arnav-motiramani/daily-doodles/pkg/types"
	"github.com/arnav-motiramani/daily-doodles/pkg/utils"
)

type testDSN string

func (d testDSN) FormatDSN() string { return string(d) }

func newTestProvider(t *testing.T) *sqlstore.Provider {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}
	return sqlstore.MustSetup(testDSN(dsn))()
}

func Test_EntryStoreRoundTrip(t *testing.T) {
	provider := newTestProvider(t)
	store := provider.EntryStore()
	ctx := context.Background()

	utils.SetupIDWorker(1)
	userID := utils.GenSpecIDStr()

	first := types.Entry{
		ID:      utils.GenSpecIDStr(),
		UserID:  userID,
		Title:   "Morning Reflection",
		Content: "wrote a few lines",
		Mood:    "Calm",
	}
	assert.NoError(t, store.Create(ctx, first))

	second := first
	second.ID = utils.GenSpecIDStr()
	second.CreatedAt = first.CreatedAt + 60
	assert.NoError(t, store.Create(ctx, second))

	list, err := store.List(ctx, userID, 0, 0)
	assert.NoError(t, err)
	assert.Len(t, list, 2)

	total, err := store.Total(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(len(list)), total)

	assert.NoError(t, store.Update(ctx, userID, first.ID, types.EntryDraft{
		Title:   "Evening Reflection",
		Content: first.Content,
		Mood:    "Tired",
	}))
	got, err := store.Get(ctx, userID, first.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Evening Reflection", got.Title)

	assert.NoError(t, store.Delete(ctx, userID, first.ID))
	assert.NoError(t, store.Delete(ctx, userID, second.ID))

	total, err = store.Total(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), total)
}
