package mapper

import (
	"encoding/json"

	"ai-recipe-be/internal/entity"
	"ai-recipe-be/internal/model"

	"gorm.io/datatypes"
)

type QueryMapper struct{}

func NewQueryMapper() *QueryMapper {
	return &QueryMapper{}
}

func (m *QueryMapper) ToEntity(q *model.QueryHistory) *entity.QueryHistory {
	if q == nil {
		return nil
	}

	var ingredients []string
	if len(q.Ingredients) > 0 {
		// Stored by us as a JSON string array; ignore rows that predate it.
		_ = json.Unmarshal(q.Ingredients, &ingredients)
	}

	return &entity.QueryHistory{
		Id:           q.Id,
		UserId:       q.UserId,
		QueryText:    q.QueryText,
		Ingredients:  ingredients,
		ResponseText: q.ResponseText,
		Fallback:     q.Fallback,
		CreatedAt:    q.CreatedAt,
	}
}

func (m *QueryMapper) ToModel(q *entity.QueryHistory) *model.QueryHistory {
	if q == nil {
		return nil
	}

	var raw datatypes.JSON
	if q.Ingredients != nil {
		if b, err := json.Marshal(q.Ingredients); err == nil {
			raw = b
		}
	}

	return &model.QueryHistory{
		Id:           q.Id,
		UserId:       q.UserId,
		QueryText:    q.QueryText,
		Ingredients:  raw,
		ResponseText: q.ResponseText,
		Fallback:     q.Fallback,
		CreatedAt:    q.CreatedAt,
	}
}

func (m *QueryMapper) ToEntities(queries []*model.QueryHistory) []*entity.QueryHistory {
	entities := make([]*entity.QueryHistory, len(queries))
	for i, q := range queries {
		entities[i] = m.ToEntity(q)
	}
	return entities
}
