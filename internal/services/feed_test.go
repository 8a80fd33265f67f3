package services

import (
	"testing"
	"time"

	"github.com/leovoon/notbyai.space/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyFeedBoundedAndOrdered(t *testing.T) {
	gdb := testDB(t)
	user := seedUser(t, gdb, "writer@example.com", models.RoleNewUser)

	base := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		post := models.Post{
			UserID:    user.ID,
			Content:   "approved " + string(rune('a'+i)),
			Tag:       models.TagHuman2Human,
			Status:    models.StatusApproved,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, gdb.Create(&post).Error)
	}
	require.NoError(t, gdb.Create(&models.Post{
		UserID: user.ID, Content: "not yet reviewed", Tag: models.TagHuman2Human,
		Status: models.StatusPending, CreatedAt: base.Add(time.Hour),
	}).Error)

	posts, err := DailyFeed(gdb)
	require.NoError(t, err)
	require.Len(t, posts, DailyFeedSize)
	assert.Equal(t, "approved e", posts[0].Content)
	assert.Equal(t, "approved c", posts[2].Content)
	for _, p := range posts {
		assert.Equal(t, models.StatusApproved, p.Status)
		assert.Equal(t, user.Email, p.UserEmail)
	}
}

func TestDailyFeedSurvivesMissingOwner(t *testing.T) {
	gdb := testDB(t)

	require.NoError(t, gdb.Create(&models.Post{
		UserID:  "ghost-user-id",
		Content: "my author is gone",
		Tag:     models.TagHeartLed,
		Status:  models.StatusApproved,
	}).Error)

	posts, err := DailyFeed(gdb)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Anonymous", posts[0].UserEmail)
}
