package repository

import (
	"context"
	"sync"
	"time"

	domain "github.com/freelancedesk/freelance-tracker/internal/domain/gig"
	"github.com/freelancedesk/freelance-tracker/internal/httperr"
	"github.com/freelancedesk/freelance-tracker/internal/models"
)

type GigMemoryRepository struct {
	mu     sync.Mutex
	nextID uint
	order  []uint
	items  map[uint]models.Gig
}

func NewGigMemoryRepository() *GigMemoryRepository {
	return &GigMemoryRepository{
		nextID: 1,
		items:  make(map[uint]models.Gig),
	}
}

func (r *GigMemoryRepository) List(ctx context.Context) ([]models.Gig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Gig, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *GigMemoryRepository) GetByID(ctx context.Context, id uint) (*models.Gig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.items[id]
	if !ok {
		return nil, httperr.ErrNotFound("gig_not_found")
	}
	return &g, nil
}

func (r *GigMemoryRepository) Create(ctx context.Context, g *models.Gig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	g.ID = r.nextID
	g.CreatedAt = now
	g.UpdatedAt = now
	r.nextID++

	r.items[g.ID] = *g
	r.order = append(r.order, g.ID)
	return nil
}

func (r *GigMemoryRepository) Update(ctx context.Context, g *models.Gig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[g.ID]; !ok {
		return httperr.ErrNotFound("gig_not_found")
	}
	g.UpdatedAt = time.Now()
	r.items[g.ID] = *g
	return nil
}

// Compile-time check
var _ domain.Repository = (*GigMemoryRepository)(nil)
