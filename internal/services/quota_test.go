package services

import (
	"errors"
	"testing"

	"github.com/leovoon/notbyai.space/internal/errs"
	"github.com/leovoon/notbyai.space/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumeDailyQuota(t *testing.T) {
	gdb := testDB(t)
	user := seedUser(t, gdb, "poster@example.com", models.RoleNewUser)

	for i := 1; i <= DailyPostLimit; i++ {
		require.NoError(t, ConsumeDailyQuota(gdb, user.ID))

		var got models.User
		require.NoError(t, gdb.First(&got, "id = ?", user.ID).Error)
		assert.Equal(t, i, got.PostsToday)
		assert.Equal(t, TodayUTC(), got.LastPostDate)
	}

	err := ConsumeDailyQuota(gdb, user.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.RateLimited("")))

	var got models.User
	require.NoError(t, gdb.First(&got, "id = ?", user.ID).Error)
	assert.Equal(t, DailyPostLimit, got.PostsToday, "a rejected consume must not move the counter")
}

func TestConsumeDailyQuotaDayRollover(t *testing.T) {
	gdb := testDB(t)
	user := seedUser(t, gdb, "yesterday@example.com", models.RoleNewUser)

	// Simulate a user who exhausted yesterday's quota
	require.NoError(t, gdb.Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"posts_today":    DailyPostLimit,
			"last_post_date": "2020-01-01",
		}).Error)

	require.NoError(t, ConsumeDailyQuota(gdb, user.ID))

	var got models.User
	require.NoError(t, gdb.First(&got, "id = ?", user.ID).Error)
	assert.Equal(t, 1, got.PostsToday, "rollover resets before counting today's first post")
	assert.Equal(t, TodayUTC(), got.LastPostDate)
}
