package mapper

import (
	"synapsex-be/internal/entity"
	"synapsex-be/internal/model"
)

type StoryViewMapper struct{}

func NewStoryViewMapper() *StoryViewMapper {
	return &StoryViewMapper{}
}

func (m *StoryViewMapper) ToEntity(v *model.StoryView) *entity.StoryView {
	if v == nil {
		return nil
	}

	return &entity.StoryView{
		StoryId:  v.StoryId,
		UserId:   v.UserId,
		ViewedAt: v.ViewedAt,
	}
}

func (m *StoryViewMapper) ToModel(v *entity.StoryView) *model.StoryView {
	if v == nil {
		return nil
	}

	return &model.StoryView{
		StoryId:  v.StoryId,
		UserId:   v.UserId,
		ViewedAt: v.ViewedAt,
	}
}

func (m *StoryViewMapper) ToEntities(views []*model.StoryView) []*entity.StoryView {
	entities := make([]*entity.StoryView, len(views))
	for i, v := range views {
		entities[i] = m.ToEntity(v)
	}
	return entities
}
