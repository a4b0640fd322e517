package memory

import (
	"context"
	"sort"
	"time"

	"ai-recipe-be/internal/entity"
	"ai-recipe-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseRepository struct {
	store *Store
}

func matchPurchase(p *entity.Purchase, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if p.Id != s.ID {
				return false
			}
		case specification.OwnedBy:
			if p.UserId != s.UserID {
				return false
			}
		case specification.ByReference:
			if p.Reference != s.Reference {
				return false
			}
		}
	}
	return true
}

func (r *PurchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.references[purchase.Reference]; exists {
		return gorm.ErrDuplicatedKey
	}
	if purchase.Id == uuid.Nil {
		purchase.Id = uuid.New()
	}
	if purchase.CreatedAt.IsZero() {
		purchase.CreatedAt = time.Now()
	}
	cp := *purchase
	r.store.purchases[purchase.Id] = &cp
	r.store.references[purchase.Reference] = purchase.Id
	return nil
}

func (r *PurchaseRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Purchase, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, p := range r.store.purchases {
		if matchPurchase(p, specs) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *PurchaseRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Purchase, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.Purchase
	for _, p := range r.store.purchases {
		if matchPurchase(p, specs) {
			cp := *p
			out = append(out, &cp)
		}
	}
	for _, spec := range specs {
		if s, ok := spec.(specification.OrderBy); ok && s.Field == "created_at" {
			sort.SliceStable(out, func(i, j int) bool {
				if s.Desc {
					return out[i].CreatedAt.After(out[j].CreatedAt)
				}
				return out[i].CreatedAt.Before(out[j].CreatedAt)
			})
		}
	}
	return out, nil
}
