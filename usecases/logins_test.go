package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin-server/auth"
	"admin-server/entities"
)

func TestLoginTrackerList(t *testing.T) {
	logins := newFakeLoginRecordRepo()
	now := time.Now().UTC()

	require.NoError(t, logins.Create(&entities.LoginRecord{
		UserID:    "user-1",
		Timestamp: now,
		User: &entities.User{
			ID:    "user-1",
			Email: "user@test.com",
			Name:  "User",
			Role:  auth.RoleEditor,
		},
	}))
	require.NoError(t, logins.Create(&entities.LoginRecord{
		UserID:    "gone-user",
		Timestamp: now,
	}))

	uc := NewLoginTrackerUseCase(logins)
	entries, err := uc.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.NotNil(t, entries[0].User)
	assert.Equal(t, "user@test.com", entries[0].User.Email)
	assert.Equal(t, "Editor", entries[0].User.Role)

	// Records whose user was deleted carry a null user.
	assert.Nil(t, entries[1].User)
}
