package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "STORY_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation used by publishers and by the
// subscriber when reconstructing events off the wire.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Story lifecycle event codes.
const (
	TypeStoryCreated = "STORY_CREATED"
	TypeStoryViewed  = "STORY_VIEWED"
	TypeStoryReplied = "STORY_REPLIED"
	TypeStoryDeleted = "STORY_DELETED"
)

// NewStoryCreated announces a fresh story.
func NewStoryCreated(storyId, ownerId uuid.UUID, expiresAt time.Time) Event {
	return BaseEvent{
		Type: TypeStoryCreated,
		Data: map[string]interface{}{
			"story_id":   storyId.String(),
			"owner_id":   ownerId.String(),
			"expires_at": expiresAt.Format(time.RFC3339),
		},
		OccurredAt: time.Now(),
	}
}

// NewStoryViewed announces a viewer's first view of a story.
func NewStoryViewed(storyId, ownerId, viewerId uuid.UUID) Event {
	return BaseEvent{
		Type: TypeStoryViewed,
		Data: map[string]interface{}{
			"story_id": storyId.String(),
			"owner_id": ownerId.String(),
			"actor_id": viewerId.String(),
		},
		OccurredAt: time.Now(),
	}
}

// NewStoryReplied announces a reply. Content travels with the event so the
// push path needs no extra read.
func NewStoryReplied(storyId, ownerId, senderId uuid.UUID, username, content string) Event {
	return BaseEvent{
		Type: TypeStoryReplied,
		Data: map[string]interface{}{
			"story_id": storyId.String(),
			"owner_id": ownerId.String(),
			"actor_id": senderId.String(),
			"username": username,
			"content":  content,
		},
		OccurredAt: time.Now(),
	}
}

// NewStoryDeleted announces an owner-initiated hard delete.
func NewStoryDeleted(storyId, ownerId uuid.UUID) Event {
	return BaseEvent{
		Type: TypeStoryDeleted,
		Data: map[string]interface{}{
			"story_id": storyId.String(),
			"owner_id": ownerId.String(),
		},
		OccurredAt: time.Now(),
	}
}
