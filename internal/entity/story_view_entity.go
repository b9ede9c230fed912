package entity

import (
	"time"

	"github.com/google/uuid"
)

// StoryView records that a user has seen a story. At most one view exists
// per (story, viewer) pair; repeat views refresh ViewedAt.
type StoryView struct {
	StoryId  uuid.UUID
	UserId   uuid.UUID
	ViewedAt time.Time
}
