package implementation

import (
	"context"

	"synapsex-be/internal/entity"
	"synapsex-be/internal/mapper"
	"synapsex-be/internal/model"
	"synapsex-be/internal/repository/contract"
	"synapsex-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StoryMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StoryMessageMapper
}

func NewStoryMessageRepository(db *gorm.DB) contract.StoryMessageRepository {
	return &StoryMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewStoryMessageMapper(),
	}
}

func (r *StoryMessageRepositoryImpl) Create(ctx context.Context, message *entity.StoryMessage) error {
	m := r.mapper.ToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.ToEntity(m)
	return nil
}

func (r *StoryMessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StoryMessage, error) {
	var models []*model.StoryMessage
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *StoryMessageRepositoryImpl) DeleteAllByStoryId(ctx context.Context, storyId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("story_id = ?", storyId).Delete(&model.StoryMessage{}).Error
}

func (r *StoryMessageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.StoryMessage{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
