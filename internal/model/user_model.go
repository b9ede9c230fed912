package model

import (
	"github.com/google/uuid"
)

// User mirrors the identity collaborator's table. The story domain never
// writes it outside of migrations and tests.
type User struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(50);unique;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	ProfileImage string    `gorm:"type:text"`
}

func (User) TableName() string {
	return "users"
}
