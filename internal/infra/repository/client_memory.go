package repository

import (
	"context"
	"sync"
	"time"

	domain "github.com/freelancedesk/freelance-tracker/internal/domain/client"
	"github.com/freelancedesk/freelance-tracker/internal/httperr"
	"github.com/freelancedesk/freelance-tracker/internal/models"
)

// ClientMemoryRepository is the second conforming implementation of the
// client contract: a map-backed store with its own id sequence. It backs the
// unit and transport tests and works as a zero-dependency dev store. Records
// list in insertion order.
type ClientMemoryRepository struct {
	mu     sync.Mutex
	nextID uint
	order  []uint
	items  map[uint]models.Client
}

func NewClientMemoryRepository() *ClientMemoryRepository {
	return &ClientMemoryRepository{
		nextID: 1,
		items:  make(map[uint]models.Client),
	}
}

func (r *ClientMemoryRepository) List(ctx context.Context) ([]models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Client, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *ClientMemoryRepository) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cl, ok := r.items[id]
	if !ok {
		return nil, httperr.ErrNotFound("client_not_found")
	}
	return &cl, nil
}

func (r *ClientMemoryRepository) Create(ctx context.Context, cl *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	cl.ID = r.nextID
	cl.CreatedAt = now
	cl.UpdatedAt = now
	r.nextID++

	r.items[cl.ID] = *cl
	r.order = append(r.order, cl.ID)
	return nil
}

func (r *ClientMemoryRepository) Update(ctx context.Context, cl *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[cl.ID]; !ok {
		return httperr.ErrNotFound("client_not_found")
	}
	cl.UpdatedAt = time.Now()
	r.items[cl.ID] = *cl
	return nil
}

// Compile-time check
var _ domain.Repository = (*ClientMemoryRepository)(nil)
