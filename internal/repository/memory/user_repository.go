package memory

import (
	"context"
	"sort"

	"ai-recipe-be/internal/entity"
	"ai-recipe-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct {
	store *Store
}

func matchUser(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != s.Email {
				return false
			}
		case specification.ActiveUsers:
			if !u.Active {
				return false
			}
		}
	}
	return true
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.emails[user.Email]; exists {
		// Same error the unique index on users.email produces.
		return gorm.ErrDuplicatedKey
	}
	if user.Id == uuid.Nil {
		user.Id = uuid.New()
	}
	cp := *user
	r.store.users[user.Id] = &cp
	r.store.emails[user.Email] = user.Id
	return nil
}

func (r *UserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if matchUser(u, specs) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.User
	for _, u := range r.store.users {
		if matchUser(u, specs) {
			cp := *u
			out = append(out, &cp)
		}
	}
	for _, spec := range specs {
		if s, ok := spec.(specification.OrderBy); ok && s.Field == "created_at" {
			sort.Slice(out, func(i, j int) bool {
				if s.Desc {
					return out[i].CreatedAt.After(out[j].CreatedAt)
				}
				return out[i].CreatedAt.Before(out[j].CreatedAt)
			})
		}
	}
	return out, nil
}

func (r *UserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	users, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(users)), nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userId uuid.UUID, hash string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if u, ok := r.store.users[userId]; ok {
		u.PasswordHash = hash
	}
	return nil
}

func (r *UserRepository) SetActive(ctx context.Context, userId uuid.UUID, active bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if u, ok := r.store.users[userId]; ok {
		u.Active = active
	}
	return nil
}

// Sessions

func (r *UserRepository) CreateSession(ctx context.Context, session *entity.Session) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if session.Id == uuid.Nil {
		session.Id = uuid.New()
	}
	cp := *session
	r.store.sessions[session.Id] = &cp
	return nil
}

func (r *UserRepository) FindSession(ctx context.Context, specs ...specification.Specification) (*entity.Session, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, s := range r.store.sessions {
		if matchSession(s, specs) {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func matchSession(sess *entity.Session, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if sess.Id != s.ID {
				return false
			}
		case specification.ByTokenHash:
			if sess.TokenHash != s.Hash {
				return false
			}
		case specification.NotRevoked:
			if sess.Revoked {
				return false
			}
		}
	}
	return true
}

func (r *UserRepository) RevokeSession(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if s, ok := r.store.sessions[id]; ok {
		s.Revoked = true
	}
	return nil
}
