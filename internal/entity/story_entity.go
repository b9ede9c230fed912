package entity

import (
	"time"

	"github.com/google/uuid"
)

// StoryType is the media kind of a story. Values match the wire literals.
type StoryType string

const (
	StoryTypeImage StoryType = "IMAGE"
	StoryTypeVideo StoryType = "VIDEO"
)

// NormalizeStoryType maps a raw request value onto a valid type. Missing or
// unrecognized values default to IMAGE.
func NormalizeStoryType(raw string) StoryType {
	switch StoryType(raw) {
	case StoryTypeImage, StoryTypeVideo:
		return StoryType(raw)
	default:
		return StoryTypeImage
	}
}

// Story is an ephemeral media post. ExpiresAt is fixed at creation and
// never mutated; expiry is purely a read-time predicate.
type Story struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	MediaUrl  string
	Type      StoryType
	CreatedAt time.Time
	ExpiresAt time.Time
}

// ActiveAt reports whether the story is still live at t. A story whose
// expiry equals t is already expired.
func (s *Story) ActiveAt(t time.Time) bool {
	return t.Before(s.ExpiresAt)
}

// OwnedBy reports whether userId created this story.
func (s *Story) OwnedBy(userId uuid.UUID) bool {
	return s.UserId == userId
}
