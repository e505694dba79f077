package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/phenrril/customerdesk/internal/domain"
)

// fakeCustomerRepo solo para tests: guarda en memoria y puede forzar fallas de escritura.
type fakeCustomerRepo struct {
	mu      sync.Mutex
	rows    []domain.Customer
	nextID  uint
	failErr error
}

func (f *fakeCustomerRepo) Initialize(ctx context.Context) error { return nil }

func (f *fakeCustomerRepo) Append(ctx context.Context, c *domain.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return f.failErr
	}
	f.nextID++
	c.ID = f.nextID
	c.Name = strings.TrimSpace(c.Name)
	c.Address = strings.TrimSpace(c.Address)
	c.CreatedAt = time.Now()
	f.rows = append(f.rows, *c)
	return nil
}

func (f *fakeCustomerRepo) FindByID(ctx context.Context, id uint) (*domain.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.ID == id {
			c := r
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeOutcomes struct{ counts map[string]int }

func (f *fakeOutcomes) Record(outcome string) {
	if f.counts == nil {
		f.counts = map[string]int{}
	}
	f.counts[outcome]++
}
