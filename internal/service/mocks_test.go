package service

import (
	"context"

	"synapsex-be/internal/entity"
	"synapsex-be/internal/repository/contract"
	"synapsex-be/internal/repository/specification"
	"synapsex-be/internal/repository/unitofwork"
	"synapsex-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockStoryRepository struct {
	mock.Mock
}

func (m *MockStoryRepository) Create(ctx context.Context, story *entity.Story) error {
	return m.Called(ctx, story).Error(0)
}

func (m *MockStoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStoryRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Story, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.(*entity.Story), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStoryRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Story, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Story), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStoryRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	args := m.Called(ctx, specs)
	return args.Get(0).(int64), args.Error(1)
}

type MockStoryViewRepository struct {
	mock.Mock
}

func (m *MockStoryViewRepository) Upsert(ctx context.Context, view *entity.StoryView) error {
	return m.Called(ctx, view).Error(0)
}

func (m *MockStoryViewRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StoryView, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.(*entity.StoryView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStoryViewRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StoryView, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.([]*entity.StoryView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStoryViewRepository) DeleteAllByStoryId(ctx context.Context, storyId uuid.UUID) error {
	return m.Called(ctx, storyId).Error(0)
}

func (m *MockStoryViewRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	args := m.Called(ctx, specs)
	return args.Get(0).(int64), args.Error(1)
}

type MockStoryMessageRepository struct {
	mock.Mock
}

func (m *MockStoryMessageRepository) Create(ctx context.Context, message *entity.StoryMessage) error {
	return m.Called(ctx, message).Error(0)
}

func (m *MockStoryMessageRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StoryMessage, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.([]*entity.StoryMessage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStoryMessageRepository) DeleteAllByStoryId(ctx context.Context, storyId uuid.UUID) error {
	return m.Called(ctx, storyId).Error(0)
}

func (m *MockStoryMessageRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	args := m.Called(ctx, specs)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.([]*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	args := m.Called(ctx, specs)
	return args.Get(0).(int64), args.Error(1)
}

// fakeUnitOfWork hands the mocks to the service and records transaction
// calls.
type fakeUnitOfWork struct {
	stories  *MockStoryRepository
	views    *MockStoryViewRepository
	messages *MockStoryMessageRepository
	users    *MockUserRepository

	begun      int
	committed  int
	rolledBack int
	beginErr   error
	commitErr  error
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		stories:  new(MockStoryRepository),
		views:    new(MockStoryViewRepository),
		messages: new(MockStoryMessageRepository),
		users:    new(MockUserRepository),
	}
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error {
	u.begun++
	return u.beginErr
}

func (u *fakeUnitOfWork) Commit() error {
	u.committed++
	return u.commitErr
}

func (u *fakeUnitOfWork) Rollback() error {
	u.rolledBack++
	return nil
}

func (u *fakeUnitOfWork) StoryRepository() contract.StoryRepository { return u.stories }

func (u *fakeUnitOfWork) StoryViewRepository() contract.StoryViewRepository { return u.views }

func (u *fakeUnitOfWork) StoryMessageRepository() contract.StoryMessageRepository { return u.messages }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository { return u.users }

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// recordingPublisher captures published events.
type recordingPublisher struct {
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}
