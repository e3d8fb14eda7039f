package types

import (
	"strings"

	"github.com/lib/pq"
)

type Entry struct {
	ID        string         `json:"id" db:"id"`
	UserID    string         `json:"user_id" db:"user_id"`
	Title     string         `json:"title" db:"title"`
	Content   string         `json:"content" db:"content"`
	Mood      string         `json:"mood" db:"mood"`
	AIInsight string         `json:"ai_insight" db:"ai_insight"`
	Tags      pq.StringArray `json:"tags" db:"tags"`
	CreatedAt int64          `json:"created_at" db:"created_at"`
	UpdatedAt int64          `json:"updated_at" db:"updated_at"`
}

// TEMP_ID_MARK marks ids the client invented for an unsaved draft. A
// draft id is never trusted as a persisted id.
const TEMP_ID_MARK = "temp"

// EntryDraft is the editable part of an entry before it has an identity.
type EntryDraft struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Mood      string   `json:"mood"`
	AIInsight string   `json:"ai_insight"`
	Tags      []string `json:"tags"`
	CreatedAt int64    `json:"created_at"`
}

// IsPersistedEntryID reports whether id refers to a stored entry rather
// than a client-side draft placeholder.
func IsPersistedEntryID(id string) bool {
	return id != "" && !strings.Contains(id, TEMP_ID_MARK)
}

const DEFAULT_ENTRY_TITLE = "Morning Reflection"

type EntryStats struct {
	Total         int    `json:"total"`
	Streak        int    `json:"streak"`
	PrimaryMood   string `json:"primary_mood"`
	LastWrittenAt int64  `json:"last_written_at"`
}

// DEFAULT_PRIMARY_MOOD is shown when no entry carries a mood yet.
const DEFAULT_PRIMARY_MOOD = "Quiet"
