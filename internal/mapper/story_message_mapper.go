package mapper

import (
	"synapsex-be/internal/entity"
	"synapsex-be/internal/model"
)

type StoryMessageMapper struct{}

func NewStoryMessageMapper() *StoryMessageMapper {
	return &StoryMessageMapper{}
}

func (m *StoryMessageMapper) ToEntity(msg *model.StoryMessage) *entity.StoryMessage {
	if msg == nil {
		return nil
	}

	return &entity.StoryMessage{
		Id:        msg.Id,
		StoryId:   msg.StoryId,
		UserId:    msg.UserId,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *StoryMessageMapper) ToModel(msg *entity.StoryMessage) *model.StoryMessage {
	if msg == nil {
		return nil
	}

	return &model.StoryMessage{
		Id:        msg.Id,
		StoryId:   msg.StoryId,
		UserId:    msg.UserId,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *StoryMessageMapper) ToEntities(msgs []*model.StoryMessage) []*entity.StoryMessage {
	entities := make([]*entity.StoryMessage, len(msgs))
	for i, msg := range msgs {
		entities[i] = m.ToEntity(msg)
	}
	return entities
}
