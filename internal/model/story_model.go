package model

import (
	"time"

	"github.com/google/uuid"
)

type Story struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	User      User      `gorm:"foreignKey:UserId"`
	MediaUrl  string    `gorm:"type:text;not null"`
	Type      string    `gorm:"type:story_type;not null;default:'IMAGE'"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

func (Story) TableName() string {
	return "stories"
}
