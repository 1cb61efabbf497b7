package permissions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bengkel/permissions"
	"bengkel/shared/constant"
)

func TestGet_LoadsEmbeddedTable(t *testing.T) {
	data := permissions.Get()

	require.NotNil(t, data)
	assert.NotEmpty(t, data.Actions)
}

func TestAllows(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name   string
		action string
		role   string
		want   bool
	}{
		{"user may create bookings", constant.ActionBookingCreate, constant.RoleUser, true},
		{"user may list own bookings", constant.ActionBookingListOwn, constant.RoleUser, true},
		{"user may read stats", constant.ActionReportStats, constant.RoleUser, true},
		{"user may not list all bookings", constant.ActionBookingListAll, constant.RoleUser, false},
		{"user may not update bookings", constant.ActionBookingUpdate, constant.RoleUser, false},
		{"user may not delete bookings", constant.ActionBookingDelete, constant.RoleUser, false},
		{"admin may list all bookings", constant.ActionBookingListAll, constant.RoleAdmin, true},
		{"admin may update bookings", constant.ActionBookingUpdate, constant.RoleAdmin, true},
		{"admin may delete bookings", constant.ActionBookingDelete, constant.RoleAdmin, true},
		{"unknown action is denied", "booking:archive", constant.RoleAdmin, false},
		{"unknown role is denied", constant.ActionBookingCreate, "visitor", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, data.Allows(tt.action, tt.role))
		})
	}
}

func TestFindPermission_Unknown(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	assert.Empty(t, data.FindPermission("no:such:action").Action)
}
