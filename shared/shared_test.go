package shared_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"bengkel/shared"
	"bengkel/shared/constant"
)

func TestNewTimeID_Unique(t *testing.T) {
	const n = 100

	seen := make(map[string]bool, n)

	for range n {
		id := shared.NewTimeID(constant.BookingIDPrefix)

		assert.True(t, strings.HasPrefix(id, constant.BookingIDPrefix))
		assert.False(t, seen[id], "duplicate id %s", id)

		seen[id] = true
	}
}

func TestNewTimeID_Prefixes(t *testing.T) {
	userID := shared.NewTimeID(constant.UserIDPrefix)
	bookingID := shared.NewTimeID(constant.BookingIDPrefix)

	assert.True(t, strings.HasPrefix(userID, "user_"))
	assert.True(t, strings.HasPrefix(bookingID, "BK"))
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:get:BK1", shared.BuildCacheKey("booking:get", "BK1"))
	assert.Equal(t, "booking:gets::pending:", shared.BuildCacheKey("booking:gets", "", "pending", ""))
}
