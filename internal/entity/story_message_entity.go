package entity

import (
	"time"

	"github.com/google/uuid"
)

// StoryMessage is a reply sent to a story. Messages are never updated and
// die with the parent story.
type StoryMessage struct {
	Id        uuid.UUID
	StoryId   uuid.UUID
	UserId    uuid.UUID
	Content   string
	CreatedAt time.Time
}
