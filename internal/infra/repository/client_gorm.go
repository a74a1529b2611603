package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/freelancedesk/freelance-tracker/internal/domain/client"
	"github.com/freelancedesk/freelance-tracker/internal/httperr"
	"github.com/freelancedesk/freelance-tracker/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) List(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientGormRepository) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	var cl models.Client
	if err := r.db.WithContext(ctx).First(&cl, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("client_not_found")
		}
		return nil, err
	}
	return &cl, nil
}

func (r *ClientGormRepository) Create(ctx context.Context, cl *models.Client) error {
	return r.db.WithContext(ctx).Create(cl).Error
}

func (r *ClientGormRepository) Update(ctx context.Context, cl *models.Client) error {
	return r.db.WithContext(ctx).Save(cl).Error
}

// Compile-time check
var _ domain.Repository = (*ClientGormRepository)(nil)
