package implementation

import (
	"context"
	"errors"

	"synapsex-be/internal/entity"
	"synapsex-be/internal/mapper"
	"synapsex-be/internal/model"
	"synapsex-be/internal/repository/contract"
	"synapsex-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StoryViewRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StoryViewMapper
}

func NewStoryViewRepository(db *gorm.DB) contract.StoryViewRepository {
	return &StoryViewRepositoryImpl{
		db:     db,
		mapper: mapper.NewStoryViewMapper(),
	}
}

func (r *StoryViewRepositoryImpl) Upsert(ctx context.Context, view *entity.StoryView) error {
	m := r.mapper.ToModel(view)
	// One round trip: INSERT ... ON CONFLICT (story_id, user_id) DO UPDATE.
	// Concurrent views from the same user collapse to one row without a
	// read-check-then-write race.
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "story_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"viewed_at": m.ViewedAt}),
	}).Create(m).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// A racing insert landed between conflict resolution attempts.
		// The row now exists, so one retry resolves via DO UPDATE.
		err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "story_id"}, {Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"viewed_at": m.ViewedAt}),
		}).Create(m).Error
	}
	return err
}

func (r *StoryViewRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StoryView, error) {
	var m model.StoryView
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *StoryViewRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StoryView, error) {
	var models []*model.StoryView
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *StoryViewRepositoryImpl) DeleteAllByStoryId(ctx context.Context, storyId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("story_id = ?", storyId).Delete(&model.StoryView{}).Error
}

func (r *StoryViewRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.StoryView{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
