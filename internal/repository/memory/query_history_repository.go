package memory

import (
	"context"
	"sort"
	"time"

	"ai-recipe-be/internal/entity"
	"ai-recipe-be/internal/repository/specification"

	"github.com/google/uuid"
)

type QueryHistoryRepository struct {
	store *Store
}

func matchQuery(q *entity.QueryHistory, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if q.Id != s.ID {
				return false
			}
		case specification.OwnedBy:
			if q.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

func (r *QueryHistoryRepository) Create(ctx context.Context, query *entity.QueryHistory) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if query.Id == uuid.Nil {
		query.Id = uuid.New()
	}
	if query.CreatedAt.IsZero() {
		query.CreatedAt = time.Now()
	}
	cp := *query
	r.store.queries = append(r.store.queries, &cp)
	return nil
}

func (r *QueryHistoryRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.QueryHistory, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, q := range r.store.queries {
		if matchQuery(q, specs) {
			cp := *q
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *QueryHistoryRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QueryHistory, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.QueryHistory
	for _, q := range r.store.queries {
		if matchQuery(q, specs) {
			cp := *q
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

func (r *QueryHistoryRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(all)), nil
}
