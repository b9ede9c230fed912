package contract

import (
	"context"

	"synapsex-be/internal/entity"
	"synapsex-be/internal/repository/specification"
)

// UserRepository is read-mostly: the identity collaborator owns writes.
// Create exists for migrations and test fixtures.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
