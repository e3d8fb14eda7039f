package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arnav-motiramani/daily-doodles/pkg/types"
)

func TestIsPersistedEntryID(t *testing.T) {
	assert.False(t, types.IsPersistedEntryID(""))
	assert.False(t, types.IsPersistedEntryID("temp-1736401"))
	assert.False(t, types.IsPersistedEntryID("draft-temp"))
	assert.True(t, types.IsPersistedEntryID("8213749302147483648"))
	assert.True(t, types.IsPersistedEntryID("aK3xbGh2"))
}
