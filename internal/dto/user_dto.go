package dto

import (
	"github.com/google/uuid"
)

// UserSummary is the denormalized owner/sender block embedded in story
// responses. Field names follow the client wire contract (camelCase).
type UserSummary struct {
	Id           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name,omitempty"`
	ProfileImage string    `json:"profileImage,omitempty"`
}
