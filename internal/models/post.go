package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostStatus string

const (
	StatusPending  PostStatus = "pending"
	StatusApproved PostStatus = "approved"
	StatusRejected PostStatus = "rejected"
)

type ContentTag string

const (
	TagHuman2Human  ContentTag = "Human2Human"
	TagInnerWorld   ContentTag = "InnerWorld"
	TagWitSpark     ContentTag = "WitSpark"
	TagDeepThought  ContentTag = "DeepThought"
	TagHeartLed     ContentTag = "HeartLed"
	TagCulturalSoul ContentTag = "CulturalSoul"
	TagAdaptFlow    ContentTag = "AdaptFlow"
)

// ContentTags lists every accepted tag, in display order.
var ContentTags = []ContentTag{
	TagHuman2Human,
	TagInnerWorld,
	TagWitSpark,
	TagDeepThought,
	TagHeartLed,
	TagCulturalSoul,
	TagAdaptFlow,
}

// Valid reports whether the tag belongs to the closed category set.
func (t ContentTag) Valid() bool {
	for _, tag := range ContentTags {
		if t == tag {
			return true
		}
	}
	return false
}

type Post struct {
	ID         string     `gorm:"primaryKey;size:36" json:"id"`
	UserID     string     `gorm:"size:36;not null;index" json:"user_id"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	Tag        ContentTag `gorm:"size:20;not null" json:"tag"`
	Status     PostStatus `gorm:"size:10;default:'pending';not null;index" json:"status"`
	Resonates  int        `gorm:"default:0" json:"resonates"`
	Cherishes  int        `gorm:"default:0" json:"cherishes"`
	CreatedAt  time.Time  `json:"created_at"`
	ReviewedAt *time.Time `json:"reviewed_at"`
	ReviewerID *string    `gorm:"size:36" json:"reviewer_id"`

	// Filled at query time for listings, not persisted
	UserEmail string `gorm:"-" json:"user_email,omitempty"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
