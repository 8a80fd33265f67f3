package services

import (
	"errors"
	"testing"
	"time"

	"github.com/leovoon/notbyai.space/internal/errs"
	"github.com/leovoon/notbyai.space/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost(t *testing.T) {
	gdb := testDB(t)
	user := seedUser(t, gdb, "author@example.com", models.RoleNewUser)

	post, err := CreatePost(gdb, user, "Typed with my own two hands", models.TagHuman2Human)
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, models.StatusPending, post.Status)
	assert.Equal(t, user.ID, post.UserID)

	var got models.User
	require.NoError(t, gdb.First(&got, "id = ?", user.ID).Error)
	assert.Equal(t, 1, got.PostsToday)
}

func TestCreatePostQuotaExceeded(t *testing.T) {
	gdb := testDB(t)
	user := seedUser(t, gdb, "prolific@example.com", models.RoleNewUser)

	for i := 0; i < DailyPostLimit; i++ {
		_, err := CreatePost(gdb, user, "Another thought of the day", models.TagInnerWorld)
		require.NoError(t, err)
	}

	_, err := CreatePost(gdb, user, "One too many", models.TagInnerWorld)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.RateLimited("")))

	var count int64
	require.NoError(t, gdb.Model(&models.Post{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, DailyPostLimit, count, "the rejected create must not leave a post behind")
}

func TestCreatePostValidation(t *testing.T) {
	gdb := testDB(t)
	user := seedUser(t, gdb, "sloppy@example.com", models.RoleNewUser)

	_, err := CreatePost(gdb, user, "", models.TagWitSpark)
	assert.True(t, errors.Is(err, errs.Validation("")))

	_, err = CreatePost(gdb, user, "   ", models.TagWitSpark)
	assert.True(t, errors.Is(err, errs.Validation("")))

	_, err = CreatePost(gdb, user, "Valid content", models.ContentTag("RobotThoughts"))
	assert.True(t, errors.Is(err, errs.Validation("")))

	// Failed validation must not spend quota
	var got models.User
	require.NoError(t, gdb.First(&got, "id = ?", user.ID).Error)
	assert.Equal(t, 0, got.PostsToday)
}

func TestCreatePostStripsMarkup(t *testing.T) {
	gdb := testDB(t)
	user := seedUser(t, gdb, "markup@example.com", models.RoleNewUser)

	post, err := CreatePost(gdb, user, "<script>alert(1)</script>plain words only", models.TagDeepThought)
	require.NoError(t, err)
	assert.Equal(t, "plain words only", post.Content)
}

func TestPendingPostsOrderedOldestFirst(t *testing.T) {
	gdb := testDB(t)
	user := seedUser(t, gdb, "queue@example.com", models.RoleNewUser)

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	for i, content := range []string{"first", "second", "third"} {
		post := models.Post{
			UserID:    user.ID,
			Content:   content,
			Tag:       models.TagHeartLed,
			Status:    models.StatusPending,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, gdb.Create(&post).Error)
	}

	posts, err := PendingPosts(gdb)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "first", posts[0].Content)
	assert.Equal(t, "third", posts[2].Content)
	for _, p := range posts {
		assert.Equal(t, user.Email, p.UserEmail)
	}
}

func TestApprovedPostsOrderedNewestFirst(t *testing.T) {
	gdb := testDB(t)
	user := seedUser(t, gdb, "curated@example.com", models.RoleNewUser)

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	for i, content := range []string{"oldest", "middle", "newest"} {
		post := models.Post{
			UserID:    user.ID,
			Content:   content,
			Tag:       models.TagCulturalSoul,
			Status:    models.StatusApproved,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, gdb.Create(&post).Error)
	}
	// A pending post must not leak into the curation view
	require.NoError(t, gdb.Create(&models.Post{
		UserID: user.ID, Content: "still pending", Tag: models.TagCulturalSoul,
		Status: models.StatusPending, CreatedAt: base.Add(time.Hour),
	}).Error)

	posts, err := ApprovedPosts(gdb)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "newest", posts[0].Content)
	assert.Equal(t, "oldest", posts[2].Content)
}
