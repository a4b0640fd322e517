package mapper

import (
	"ai-recipe-be/internal/entity"
	"ai-recipe-be/internal/model"
)

type PurchaseMapper struct{}

func NewPurchaseMapper() *PurchaseMapper {
	return &PurchaseMapper{}
}

func (m *PurchaseMapper) ToEntity(p *model.Purchase) *entity.Purchase {
	if p == nil {
		return nil
	}
	return &entity.Purchase{
		Id:        p.Id,
		UserId:    p.UserId,
		RecipeId:  p.RecipeId,
		Provider:  p.Provider,
		Reference: p.Reference,
		Amount:    p.Amount,
		Currency:  p.Currency,
		Status:    entity.PurchaseStatus(p.Status),
		CreatedAt: p.CreatedAt,
	}
}

func (m *PurchaseMapper) ToModel(p *entity.Purchase) *model.Purchase {
	if p == nil {
		return nil
	}
	return &model.Purchase{
		Id:        p.Id,
		UserId:    p.UserId,
		RecipeId:  p.RecipeId,
		Provider:  p.Provider,
		Reference: p.Reference,
		Amount:    p.Amount,
		Currency:  p.Currency,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
	}
}

func (m *PurchaseMapper) ToEntities(purchases []*model.Purchase) []*entity.Purchase {
	entities := make([]*entity.Purchase, len(purchases))
	for i, p := range purchases {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
