package utils_test

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"

	"github.com/arnav-motiramani/daily-doodles/pkg/types"
	"github.com/arnav-motiramani/daily-doodles/pkg/utils"
)

func TestRandomStr(t *testing.T) {
	str := utils.RandomStr(100)
	assert.Len(t, str, 100)
}

func TestMD5(t *testing.T) {
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", utils.MD5("hello"))
}

func TestGenUserPassword(t *testing.T) {
	a := utils.GenUserPassword("salt", "pwd")
	b := utils.GenUserPassword("salt", "pwd")
	assert.Equal(t, a, b)
	assert.Len(t, a, 32)

	assert.NotEqual(t, a, utils.GenUserPassword("other", "pwd"))
	assert.NotEqual(t, a, utils.GenUserPassword("salt", "other"))
}

func TestGenSpecID(t *testing.T) {
	utils.SetupIDWorker(1)
	a := utils.GenSpecID()
	b := utils.GenSpecID()
	assert.NotEqual(t, a, b)
	assert.NotEmpty(t, utils.GenSpecIDStr())
}

// Stored ids must be numeric so they can never collide with the
// client-side draft placeholder marker.
func TestGenSpecIDStrIsPersistedEntryID(t *testing.T) {
	utils.SetupIDWorker(1)
	for i := 0; i < 100; i++ {
		id := utils.GenSpecIDStr()
		for _, r := range id {
			assert.True(t, unicode.IsDigit(r), id)
		}
		assert.True(t, types.IsPersistedEntryID(id))
	}
}
