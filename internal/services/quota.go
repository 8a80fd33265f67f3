package services

import (
	"time"

	"github.com/leovoon/notbyai.space/internal/errs"
	"github.com/leovoon/notbyai.space/internal/models"

	"gorm.io/gorm"
)

// DailyPostLimit is the number of posts a user may create per UTC day.
const DailyPostLimit = 3

// TodayUTC returns the current UTC calendar day in the format stored on
// users.last_post_date.
func TodayUTC() string {
	return time.Now().UTC().Format("2006-01-02")
}

// ConsumeDailyQuota takes one unit of the caller's daily post quota, or
// returns a rate-limit error once the day's allowance is spent.
//
// Both statements are conditional single-row updates so concurrent creates
// never read-modify-write the counter: the rollover matches only when
// last_post_date is stale, and the increment matches only while the counter
// is under the limit for today. Run it inside the transaction that inserts
// the post so a failed insert rolls the unit back.
func ConsumeDailyQuota(tx *gorm.DB, userID string) error {
	today := TodayUTC()

	// Day rollover: reset exactly once per new calendar day.
	if err := tx.Model(&models.User{}).
		Where("id = ? AND last_post_date <> ?", userID, today).
		Updates(map[string]interface{}{"posts_today": 0, "last_post_date": today}).
		Error; err != nil {
		return errs.Internal("Failed to reset daily quota").Wrap(err)
	}

	result := tx.Model(&models.User{}).
		Where("id = ? AND last_post_date = ? AND posts_today < ?", userID, today, DailyPostLimit).
		UpdateColumn("posts_today", gorm.Expr("posts_today + ?", 1))
	if result.Error != nil {
		return errs.Internal("Failed to update daily quota").Wrap(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.RateLimited("Daily post limit reached (3 posts per day)")
	}
	return nil
}
