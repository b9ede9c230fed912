package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"synapsex-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReaperService_SweepOnce(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 4, 3, 0, 0, 0, time.UTC)

	t.Run("Removes expired stories with their children", func(t *testing.T) {
		uow := newFakeUnitOfWork()
		svc := NewReaperService(&fakeFactory{uow: uow}, nil, testLogger(), 72*time.Hour, time.Hour).(*reaperService)
		svc.now = func() time.Time { return now }

		first := &entity.Story{Id: uuid.New(), ExpiresAt: now.Add(-80 * time.Hour)}
		second := &entity.Story{Id: uuid.New(), ExpiresAt: now.Add(-100 * time.Hour)}

		uow.stories.On("FindAll", ctx, mock.Anything).Return([]*entity.Story{first, second}, nil).Once()
		for _, story := range []*entity.Story{first, second} {
			uow.views.On("DeleteAllByStoryId", ctx, story.Id).Return(nil).Once()
			uow.messages.On("DeleteAllByStoryId", ctx, story.Id).Return(nil).Once()
			uow.stories.On("Delete", ctx, story.Id).Return(nil).Once()
		}

		removed, err := svc.SweepOnce(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 2, removed)
		assert.Equal(t, 2, uow.committed)
		uow.stories.AssertExpectations(t)
	})

	t.Run("Nothing to reap", func(t *testing.T) {
		uow := newFakeUnitOfWork()
		svc := NewReaperService(&fakeFactory{uow: uow}, nil, testLogger(), 72*time.Hour, time.Hour).(*reaperService)
		svc.now = func() time.Time { return now }

		uow.stories.On("FindAll", ctx, mock.Anything).Return([]*entity.Story{}, nil).Once()

		removed, err := svc.SweepOnce(ctx)

		assert.NoError(t, err)
		assert.Zero(t, removed)
		assert.Zero(t, uow.begun)
	})

	t.Run("One failure does not stop the batch", func(t *testing.T) {
		uow := newFakeUnitOfWork()
		svc := NewReaperService(&fakeFactory{uow: uow}, nil, testLogger(), 72*time.Hour, time.Hour).(*reaperService)
		svc.now = func() time.Time { return now }

		bad := &entity.Story{Id: uuid.New(), ExpiresAt: now.Add(-80 * time.Hour)}
		good := &entity.Story{Id: uuid.New(), ExpiresAt: now.Add(-90 * time.Hour)}

		uow.stories.On("FindAll", ctx, mock.Anything).Return([]*entity.Story{bad, good}, nil).Once()
		uow.views.On("DeleteAllByStoryId", ctx, bad.Id).Return(errors.New("deadlock")).Once()
		uow.views.On("DeleteAllByStoryId", ctx, good.Id).Return(nil).Once()
		uow.messages.On("DeleteAllByStoryId", ctx, good.Id).Return(nil).Once()
		uow.stories.On("Delete", ctx, good.Id).Return(nil).Once()

		removed, err := svc.SweepOnce(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 1, removed)
		assert.Equal(t, 1, uow.committed)
		assert.GreaterOrEqual(t, uow.rolledBack, 1)
	})
}
