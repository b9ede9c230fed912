package model

import (
	"time"

	"github.com/google/uuid"
)

type StoryMessage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StoryId   uuid.UUID `gorm:"type:uuid;not null;index"`
	Story     Story     `gorm:"foreignKey:StoryId;constraint:OnDelete:CASCADE"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	User      User      `gorm:"foreignKey:UserId"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (StoryMessage) TableName() string {
	return "story_messages"
}
