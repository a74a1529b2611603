package repository

import (
	"context"
	"sync"
	"time"

	domain "github.com/freelancedesk/freelance-tracker/internal/domain/invoice"
	"github.com/freelancedesk/freelance-tracker/internal/httperr"
	"github.com/freelancedesk/freelance-tracker/internal/models"
)

type InvoiceMemoryRepository struct {
	mu     sync.Mutex
	nextID uint
	order  []uint
	items  map[uint]models.Invoice
}

func NewInvoiceMemoryRepository() *InvoiceMemoryRepository {
	return &InvoiceMemoryRepository{
		nextID: 1,
		items:  make(map[uint]models.Invoice),
	}
}

func (r *InvoiceMemoryRepository) List(ctx context.Context) ([]models.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Invoice, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *InvoiceMemoryRepository) GetByID(ctx context.Context, id uint) (*models.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inv, ok := r.items[id]
	if !ok {
		return nil, httperr.ErrNotFound("invoice_not_found")
	}
	return &inv, nil
}

func (r *InvoiceMemoryRepository) Create(ctx context.Context, inv *models.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	inv.ID = r.nextID
	inv.CreatedAt = now
	inv.UpdatedAt = now
	r.nextID++

	r.items[inv.ID] = *inv
	r.order = append(r.order, inv.ID)
	return nil
}

func (r *InvoiceMemoryRepository) Update(ctx context.Context, inv *models.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[inv.ID]; !ok {
		return httperr.ErrNotFound("invoice_not_found")
	}
	inv.UpdatedAt = time.Now()
	r.items[inv.ID] = *inv
	return nil
}

// Compile-time check
var _ domain.Repository = (*InvoiceMemoryRepository)(nil)
