package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateStoryRequest struct {
	MediaUrl string `json:"mediaUrl" validate:"required"`
	// Type is "IMAGE" or "VIDEO"; anything else falls back to IMAGE.
	Type string `json:"type"`
}

type StoryResponse struct {
	Id        uuid.UUID    `json:"id"`
	UserId    uuid.UUID    `json:"userId"`
	MediaUrl  string       `json:"mediaUrl"`
	Type      string       `json:"type"`
	CreatedAt time.Time    `json:"createdAt"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *UserSummary `json:"user,omitempty"`
}

// ViewStoryResponse reports the outcome of a view call. Ignored is true for
// the deliberate self-view no-op.
type ViewStoryResponse struct {
	Ignored bool `json:"ignored,omitempty"`
}

type ReplyStoryRequest struct {
	Content string `json:"content" validate:"required"`
}

type StoryMessageResponse struct {
	Id        uuid.UUID    `json:"id"`
	StoryId   uuid.UUID    `json:"storyId"`
	UserId    uuid.UUID    `json:"userId"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"createdAt"`
	User      *UserSummary `json:"user,omitempty"`
}

type StoryViewerResponse struct {
	StoryId  uuid.UUID    `json:"storyId"`
	UserId   uuid.UUID    `json:"userId"`
	ViewedAt time.Time    `json:"viewedAt"`
	User     *UserSummary `json:"user,omitempty"`
}

// StoryDetailsResponse is the owner-only analytics view: who watched and
// who replied, newest first.
type StoryDetailsResponse struct {
	Viewers  []*StoryViewerResponse  `json:"viewers"`
	Messages []*StoryMessageResponse `json:"messages"`
}

// StoryActivityPush is the real-time envelope delivered to a story owner
// over the websocket channel.
type StoryActivityPush struct {
	Kind       string    `json:"kind"` // "view" | "reply"
	StoryId    uuid.UUID `json:"storyId"`
	ActorId    uuid.UUID `json:"actorId"`
	Username   string    `json:"username,omitempty"`
	Content    string    `json:"content,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
