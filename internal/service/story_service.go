package service

import (
	"context"
	"strings"
	"time"

	"synapsex-be/internal/dto"
	"synapsex-be/internal/entity"
	"synapsex-be/internal/pkg/apperror"
	"synapsex-be/internal/pkg/logger"
	"synapsex-be/internal/repository/specification"
	"synapsex-be/internal/repository/unitofwork"
	"synapsex-be/pkg/events"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// EventPublisher pushes story lifecycle events onto the bus. A nil
// publisher disables eventing; requests never fail because of it.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type IStoryService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateStoryRequest) (*dto.StoryResponse, error)
	ListActive(ctx context.Context) ([]*dto.StoryResponse, error)
	View(ctx context.Context, userId uuid.UUID, storyId uuid.UUID) (*dto.ViewStoryResponse, error)
	Reply(ctx context.Context, userId uuid.UUID, storyId uuid.UUID, req *dto.ReplyStoryRequest) (*dto.StoryMessageResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, storyId uuid.UUID) error
	Details(ctx context.Context, userId uuid.UUID, storyId uuid.UUID) (*dto.StoryDetailsResponse, error)
}

type storyService struct {
	uowFactory   unitofwork.RepositoryFactory
	publisher    EventPublisher
	logger       logger.ILogger
	ttl          time.Duration
	messageLimit int
	now          func() time.Time
}

func NewStoryService(
	uowFactory unitofwork.RepositoryFactory,
	publisher EventPublisher,
	log logger.ILogger,
	ttl time.Duration,
	messageLimit int,
) IStoryService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if messageLimit <= 0 {
		messageLimit = 50
	}
	return &storyService{
		uowFactory:   uowFactory,
		publisher:    publisher,
		logger:       log,
		ttl:          ttl,
		messageLimit: messageLimit,
		now:          time.Now,
	}
}

func (s *storyService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateStoryRequest) (*dto.StoryResponse, error) {
	if strings.TrimSpace(req.MediaUrl) == "" {
		return nil, apperror.NewValidation("Media resource required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := s.now()

	story := entity.Story{
		Id:        uuid.New(),
		UserId:    userId,
		MediaUrl:  req.MediaUrl,
		Type:      entity.NormalizeStoryType(req.Type),
		CreatedAt: now,
		// Fixed at creation; expiry is a read-time predicate, never a mutation.
		ExpiresAt: now.Add(s.ttl),
	}

	if err := uow.StoryRepository().Create(ctx, &story); err != nil {
		return nil, apperror.NewPersistence("Failed to broadcast story", err)
	}

	owner, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperror.NewPersistence("Failed to broadcast story", err)
	}

	s.publish(ctx, events.NewStoryCreated(story.Id, story.UserId, story.ExpiresAt))

	return toStoryResponse(&story, toUserSummary(owner)), nil
}

func (s *storyService) ListActive(ctx context.Context) ([]*dto.StoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	stories, err := uow.StoryRepository().FindAll(ctx,
		specification.ActiveAt{Now: s.now()},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperror.NewPersistence("Failed to fetch stories", err)
	}

	summaries, err := s.loadUserSummaries(ctx, uow, ownerIds(stories))
	if err != nil {
		return nil, apperror.NewPersistence("Failed to fetch stories", err)
	}

	result := make([]*dto.StoryResponse, 0, len(stories))
	for _, story := range stories {
		result = append(result, toStoryResponse(story, summaries[story.UserId]))
	}
	return result, nil
}

func (s *storyService) View(ctx context.Context, userId uuid.UUID, storyId uuid.UUID) (*dto.ViewStoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	story, err := uow.StoryRepository().FindOne(ctx, specification.ByID{ID: storyId})
	if err != nil {
		return nil, apperror.NewPersistence("Failed to record view", err)
	}
	if story == nil {
		return nil, apperror.NewNotFound("Story not found")
	}

	// Owners don't inflate their own view count. Deliberate no-op, not an
	// error.
	if story.OwnedBy(userId) {
		return &dto.ViewStoryResponse{Ignored: true}, nil
	}

	// Pre-read only decides whether this is a first view for the push
	// path. Correctness does not depend on it: the upsert itself is one
	// atomic round trip.
	existing, err := uow.StoryViewRepository().FindOne(ctx,
		specification.ByStoryID{StoryID: storyId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, apperror.NewPersistence("Failed to record view", err)
	}

	view := entity.StoryView{
		StoryId:  storyId,
		UserId:   userId,
		ViewedAt: s.now(),
	}
	if err := uow.StoryViewRepository().Upsert(ctx, &view); err != nil {
		return nil, apperror.NewPersistence("Failed to record view", err)
	}

	if existing == nil {
		s.publish(ctx, events.NewStoryViewed(story.Id, story.UserId, userId))
	}

	return &dto.ViewStoryResponse{}, nil
}

func (s *storyService) Reply(ctx context.Context, userId uuid.UUID, storyId uuid.UUID, req *dto.ReplyStoryRequest) (*dto.StoryMessageResponse, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperror.NewValidation("Content required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	story, err := uow.StoryRepository().FindOne(ctx, specification.ByID{ID: storyId})
	if err != nil {
		return nil, apperror.NewPersistence("Failed to send reply", err)
	}
	if story == nil {
		return nil, apperror.NewNotFound("Story not found")
	}

	// Owner replies are stored like any other; they are only hidden from
	// the owner's aggregation in Details.
	message := entity.StoryMessage{
		Id:        uuid.New(),
		StoryId:   storyId,
		UserId:    userId,
		Content:   req.Content,
		CreatedAt: s.now(),
	}
	if err := uow.StoryMessageRepository().Create(ctx, &message); err != nil {
		return nil, apperror.NewPersistence("Failed to send reply", err)
	}

	sender, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperror.NewPersistence("Failed to send reply", err)
	}

	username := ""
	if sender != nil {
		username = sender.Username
	}
	s.publish(ctx, events.NewStoryReplied(story.Id, story.UserId, userId, username, message.Content))

	return toMessageResponse(&message, toUserSummary(sender)), nil
}

func (s *storyService) Delete(ctx context.Context, userId uuid.UUID, storyId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	story, err := uow.StoryRepository().FindOne(ctx, specification.ByID{ID: storyId})
	if err != nil {
		return apperror.NewPersistence("Termination failed", err)
	}
	if story == nil {
		// Not idempotent: a second delete sees the same 404. Callers treat
		// it as already-deleted.
		return apperror.NewNotFound("Story not found")
	}
	if !story.OwnedBy(userId) {
		return apperror.NewAuthorization("Unauthorized")
	}

	// Hard delete. Children go in the same transaction so cleanup is
	// guaranteed even without the DB-level cascade.
	if err := uow.Begin(ctx); err != nil {
		return apperror.NewPersistence("Termination failed", err)
	}
	defer uow.Rollback()

	if err := uow.StoryViewRepository().DeleteAllByStoryId(ctx, storyId); err != nil {
		return apperror.NewPersistence("Termination failed", err)
	}
	if err := uow.StoryMessageRepository().DeleteAllByStoryId(ctx, storyId); err != nil {
		return apperror.NewPersistence("Termination failed", err)
	}
	if err := uow.StoryRepository().Delete(ctx, storyId); err != nil {
		return apperror.NewPersistence("Termination failed", err)
	}
	if err := uow.Commit(); err != nil {
		return apperror.NewPersistence("Termination failed", err)
	}

	s.publish(ctx, events.NewStoryDeleted(storyId, userId))
	return nil
}

func (s *storyService) Details(ctx context.Context, userId uuid.UUID, storyId uuid.UUID) (*dto.StoryDetailsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	story, err := uow.StoryRepository().FindOne(ctx, specification.ByID{ID: storyId})
	if err != nil {
		return nil, apperror.NewPersistence("Failed to fetch details", err)
	}
	if story == nil {
		return nil, apperror.NewNotFound("Story not found")
	}
	// Strict: non-owners never see analytics, viewer or not.
	if !story.OwnedBy(userId) {
		return nil, apperror.NewAuthorization("Unauthorized")
	}

	// Viewers and messages are independent reads; fetch them in parallel.
	var (
		views    []*entity.StoryView
		messages []*entity.StoryMessage
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		views, err = uow.StoryViewRepository().FindAll(gctx,
			specification.ByStoryID{StoryID: storyId},
			specification.OrderBy{Field: "viewed_at", Desc: true},
		)
		return err
	})
	g.Go(func() error {
		var err error
		messages, err = uow.StoryMessageRepository().FindAll(gctx,
			specification.ByStoryID{StoryID: storyId},
			specification.OrderBy{Field: "created_at", Desc: true},
		)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperror.NewPersistence("Failed to fetch details", err)
	}

	// Self-exclusion is a service policy, not a storage concern.
	views = excludeOwnerViews(story, views)
	messages = capMessages(excludeOwnerMessages(story, messages), s.messageLimit)

	ids := make([]uuid.UUID, 0, len(views)+len(messages))
	for _, v := range views {
		ids = append(ids, v.UserId)
	}
	for _, m := range messages {
		ids = append(ids, m.UserId)
	}
	summaries, err := s.loadUserSummaries(ctx, uow, ids)
	if err != nil {
		return nil, apperror.NewPersistence("Failed to fetch details", err)
	}

	res := &dto.StoryDetailsResponse{
		Viewers:  make([]*dto.StoryViewerResponse, 0, len(views)),
		Messages: make([]*dto.StoryMessageResponse, 0, len(messages)),
	}
	for _, v := range views {
		res.Viewers = append(res.Viewers, &dto.StoryViewerResponse{
			StoryId:  v.StoryId,
			UserId:   v.UserId,
			ViewedAt: v.ViewedAt,
			User:     summaries[v.UserId],
		})
	}
	for _, m := range messages {
		res.Messages = append(res.Messages, toMessageResponse(m, summaries[m.UserId]))
	}
	return res, nil
}

// excludeOwnerViews drops view rows recorded for the owner. Self-views are
// never created, but the aggregation stays correct even if that rule is
// ever relaxed.
func excludeOwnerViews(story *entity.Story, views []*entity.StoryView) []*entity.StoryView {
	result := make([]*entity.StoryView, 0, len(views))
	for _, v := range views {
		if v.UserId == story.UserId {
			continue
		}
		result = append(result, v)
	}
	return result
}

// excludeOwnerMessages hides the owner's own replies from their aggregate.
func excludeOwnerMessages(story *entity.Story, messages []*entity.StoryMessage) []*entity.StoryMessage {
	result := make([]*entity.StoryMessage, 0, len(messages))
	for _, m := range messages {
		if m.UserId == story.UserId {
			continue
		}
		result = append(result, m)
	}
	return result
}

func capMessages(messages []*entity.StoryMessage, limit int) []*entity.StoryMessage {
	if len(messages) > limit {
		return messages[:limit]
	}
	return messages
}

func ownerIds(stories []*entity.Story) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(stories))
	for _, story := range stories {
		ids = append(ids, story.UserId)
	}
	return ids
}

func (s *storyService) loadUserSummaries(ctx context.Context, uow unitofwork.UnitOfWork, ids []uuid.UUID) (map[uuid.UUID]*dto.UserSummary, error) {
	summaries := make(map[uuid.UUID]*dto.UserSummary)
	unique := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	if len(unique) == 0 {
		return summaries, nil
	}

	users, err := uow.UserRepository().FindAll(ctx, specification.ByIDs{IDs: unique})
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		summaries[u.Id] = toUserSummary(u)
	}
	return summaries, nil
}

func (s *storyService) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil && s.logger != nil {
		s.logger.Warn("StoryService", "Failed to publish event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}

func toUserSummary(u *entity.User) *dto.UserSummary {
	if u == nil {
		return nil
	}
	return &dto.UserSummary{
		Id:           u.Id,
		Username:     u.Username,
		Name:         u.Name,
		ProfileImage: u.ProfileImage,
	}
}

func toStoryResponse(story *entity.Story, owner *dto.UserSummary) *dto.StoryResponse {
	return &dto.StoryResponse{
		Id:        story.Id,
		UserId:    story.UserId,
		MediaUrl:  story.MediaUrl,
		Type:      string(story.Type),
		CreatedAt: story.CreatedAt,
		ExpiresAt: story.ExpiresAt,
		User:      owner,
	}
}

func toMessageResponse(m *entity.StoryMessage, sender *dto.UserSummary) *dto.StoryMessageResponse {
	return &dto.StoryMessageResponse{
		Id:        m.Id,
		StoryId:   m.StoryId,
		UserId:    m.UserId,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		User:      sender,
	}
}
