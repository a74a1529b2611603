package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/freelancedesk/freelance-tracker/internal/domain/gig"
	"github.com/freelancedesk/freelance-tracker/internal/httperr"
	"github.com/freelancedesk/freelance-tracker/internal/models"
)

type GigGormRepository struct {
	db *gorm.DB
}

func NewGigGormRepository(db *gorm.DB) *GigGormRepository {
	return &GigGormRepository{db: db}
}

func (r *GigGormRepository) List(ctx context.Context) ([]models.Gig, error) {
	var gigs []models.Gig
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&gigs).Error; err != nil {
		return nil, err
	}
	return gigs, nil
}

func (r *GigGormRepository) GetByID(ctx context.Context, id uint) (*models.Gig, error) {
	var g models.Gig
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("gig_not_found")
		}
		return nil, err
	}
	return &g, nil
}

func (r *GigGormRepository) Create(ctx context.Context, g *models.Gig) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *GigGormRepository) Update(ctx context.Context, g *models.Gig) error {
	return r.db.WithContext(ctx).Save(g).Error
}

// Compile-time check
var _ domain.Repository = (*GigGormRepository)(nil)
