package service

import (
	"context"
	"fmt"
	"time"

	"synapsex-be/internal/dto"
	"synapsex-be/internal/pkg/logger"
	"synapsex-be/pkg/events"
	"synapsex-be/pkg/nats"

	"github.com/google/uuid"
)

// ActivityPusher delivers a real-time push to a single user. Implemented by
// the websocket hub.
type ActivityPusher interface {
	Send(userID uuid.UUID, push dto.StoryActivityPush)
}

// EventSubscriber registers a durable handler on the event stream.
type EventSubscriber interface {
	Subscribe(subject string, durableName string, handler nats.EventHandler) error
}

type INotificationService interface {
	Start() error
}

// notificationService bridges the event stream to the websocket hub: views
// and replies become live pushes to the story owner.
type notificationService struct {
	subscriber EventSubscriber
	pusher     ActivityPusher
	logger     logger.ILogger
}

func NewNotificationService(subscriber EventSubscriber, pusher ActivityPusher, log logger.ILogger) INotificationService {
	return &notificationService{
		subscriber: subscriber,
		pusher:     pusher,
		logger:     log,
	}
}

func (s *notificationService) Start() error {
	if err := s.subscriber.Subscribe(nats.Subject(events.TypeStoryViewed), "story-push-viewed", s.handle); err != nil {
		return fmt.Errorf("subscribe viewed: %w", err)
	}
	if err := s.subscriber.Subscribe(nats.Subject(events.TypeStoryReplied), "story-push-replied", s.handle); err != nil {
		return fmt.Errorf("subscribe replied: %w", err)
	}
	return nil
}

func (s *notificationService) handle(ctx context.Context, event events.Event) error {
	push, ownerId, err := toActivityPush(event)
	if err != nil {
		// Malformed events are dropped, not retried. A nak would loop forever.
		s.logger.Warn("Notification", "Dropping malformed event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
		return nil
	}

	s.pusher.Send(ownerId, push)
	return nil
}

func toActivityPush(event events.Event) (dto.StoryActivityPush, uuid.UUID, error) {
	payload := event.Payload()

	ownerId, err := payloadUUID(payload, "owner_id")
	if err != nil {
		return dto.StoryActivityPush{}, uuid.Nil, err
	}
	storyId, err := payloadUUID(payload, "story_id")
	if err != nil {
		return dto.StoryActivityPush{}, uuid.Nil, err
	}
	actorId, err := payloadUUID(payload, "actor_id")
	if err != nil {
		return dto.StoryActivityPush{}, uuid.Nil, err
	}

	push := dto.StoryActivityPush{
		StoryId:    storyId,
		ActorId:    actorId,
		OccurredAt: event.Timestamp(),
	}
	if push.OccurredAt.IsZero() {
		push.OccurredAt = time.Now()
	}

	switch event.EventType() {
	case events.TypeStoryViewed:
		push.Kind = "view"
	case events.TypeStoryReplied:
		push.Kind = "reply"
		push.Username, _ = payload["username"].(string)
		push.Content, _ = payload["content"].(string)
	default:
		return dto.StoryActivityPush{}, uuid.Nil, fmt.Errorf("unexpected event type %q", event.EventType())
	}

	return push, ownerId, nil
}

func payloadUUID(payload map[string]interface{}, key string) (uuid.UUID, error) {
	raw, ok := payload[key].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("missing %s", key)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	return id, nil
}
