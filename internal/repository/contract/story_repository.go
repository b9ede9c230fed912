package contract

import (
	"context"

	"synapsex-be/internal/entity"
	"synapsex-be/internal/repository/specification"

	"github.com/google/uuid"
)

type StoryRepository interface {
	Create(ctx context.Context, story *entity.Story) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Story, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Story, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
