package posts

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Store persists scored posts.
type Store interface {
	Create(ctx context.Context, p *DatePost) error
	ListByScore(ctx context.Context) ([]DatePost, error)
}

// GormStore is the postgres-backed Store.
//
// IMPORTANT: pass db in, do NOT import dateplan-app/database here (avoids import cycle).
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Create(ctx context.Context, p *DatePost) error {
	if p == nil {
		return fmt.Errorf("post is nil")
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("insert date post: %w", err)
	}
	return nil
}

// ListByScore returns every post, best score first. Equal scores list newest first.
func (s *GormStore) ListByScore(ctx context.Context) ([]DatePost, error) {
	var out []DatePost
	err := s.db.WithContext(ctx).
		Order("score DESC").
		Order("created_at DESC").
		Order("id DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list date posts: %w", err)
	}
	return out, nil
}
