package contract

import (
	"context"

	"synapsex-be/internal/entity"
	"synapsex-be/internal/repository/specification"

	"github.com/google/uuid"
)

type StoryViewRepository interface {
	// Upsert records a view in a single atomic round trip: insert on first
	// view, refresh viewed_at on conflict with the (story, user) key.
	Upsert(ctx context.Context, view *entity.StoryView) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StoryView, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StoryView, error)
	DeleteAllByStoryId(ctx context.Context, storyId uuid.UUID) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
