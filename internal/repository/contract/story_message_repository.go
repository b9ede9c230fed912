package contract

import (
	"context"

	"synapsex-be/internal/entity"
	"synapsex-be/internal/repository/specification"

	"github.com/google/uuid"
)

type StoryMessageRepository interface {
	Create(ctx context.Context, message *entity.StoryMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StoryMessage, error)
	DeleteAllByStoryId(ctx context.Context, storyId uuid.UUID) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
