package repository

import (
	"context"

	"gorm.io/gorm"

	"skarchitects/internal/model"
)

// ContactRepository defines contact lead persistence operations.
// The collection is append-only.
type ContactRepository interface {
	Create(ctx context.Context, lead *model.ContactLead) error
	List(ctx context.Context) ([]model.ContactLead, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository builds a GORM-backed repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, lead *model.ContactLead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

// List returns all leads, newest first.
func (r *contactRepository) List(ctx context.Context) ([]model.ContactLead, error) {
	var leads []model.ContactLead
	if err := r.db.WithContext(ctx).Order("submitted_at DESC").Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}
