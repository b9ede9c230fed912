package mapper

import (
	"synapsex-be/internal/entity"
	"synapsex-be/internal/model"
)

type StoryMapper struct{}

func NewStoryMapper() *StoryMapper {
	return &StoryMapper{}
}

func (m *StoryMapper) ToEntity(s *model.Story) *entity.Story {
	if s == nil {
		return nil
	}

	return &entity.Story{
		Id:        s.Id,
		UserId:    s.UserId,
		MediaUrl:  s.MediaUrl,
		Type:      entity.NormalizeStoryType(s.Type),
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}
}

func (m *StoryMapper) ToModel(s *entity.Story) *model.Story {
	if s == nil {
		return nil
	}

	return &model.Story{
		Id:        s.Id,
		UserId:    s.UserId,
		MediaUrl:  s.MediaUrl,
		Type:      string(s.Type),
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}
}

func (m *StoryMapper) ToEntities(stories []*model.Story) []*entity.Story {
	entities := make([]*entity.Story, len(stories))
	for i, s := range stories {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
