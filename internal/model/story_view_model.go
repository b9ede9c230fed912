package model

import (
	"time"

	"github.com/google/uuid"
)

// StoryView has no surrogate id: the (story, viewer) pair IS the identity,
// enforced by the composite unique index the upsert conflicts on.
type StoryView struct {
	StoryId  uuid.UUID `gorm:"type:uuid;primaryKey;uniqueIndex:idx_story_views_story_user"`
	Story    Story     `gorm:"foreignKey:StoryId;constraint:OnDelete:CASCADE"`
	UserId   uuid.UUID `gorm:"type:uuid;primaryKey;uniqueIndex:idx_story_views_story_user"`
	User     User      `gorm:"foreignKey:UserId"`
	ViewedAt time.Time `gorm:"not null;index"`
}

func (StoryView) TableName() string {
	return "story_views"
}
