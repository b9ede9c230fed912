package unitofwork

import (
	"context"

	"synapsex-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	StoryRepository() contract.StoryRepository
	StoryViewRepository() contract.StoryViewRepository
	StoryMessageRepository() contract.StoryMessageRepository
	UserRepository() contract.UserRepository
}
