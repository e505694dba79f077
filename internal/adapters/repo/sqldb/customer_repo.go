package sqldb

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/phenrril/customerdesk/internal/domain"
)

type CustomerRepo struct {
	db  *gorm.DB
	now func() time.Time
}

func NewCustomerRepo(db *gorm.DB) *CustomerRepo {
	return &CustomerRepo{db: db, now: time.Now}
}

// Initialize crea la tabla si no existe; nunca borra datos.
func (r *CustomerRepo) Initialize(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&domain.Customer{}); err != nil {
		return &domain.PersistenceError{Op: "initialize schema", Err: err}
	}
	return nil
}

// Append inserta el registro en una sola sentencia. ID y CreatedAt los asigna el repo;
// lo que traiga el llamador en esos campos se descarta.
func (r *CustomerRepo) Append(ctx context.Context, c *domain.Customer) error {
	if c == nil {
		return &domain.PersistenceError{Op: "append customer", Err: errors.New("nil customer")}
	}
	row := domain.Customer{
		Name:             strings.TrimSpace(c.Name),
		Birthday:         strings.TrimSpace(c.Birthday),
		Email:            strings.TrimSpace(c.Email),
		Phone:            strings.TrimSpace(c.Phone),
		Address:          strings.TrimSpace(c.Address),
		PreferredContact: domain.ContactMethod(strings.TrimSpace(string(c.PreferredContact))),
		CreatedAt:        r.now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return &domain.PersistenceError{Op: "append customer", Err: err}
	}
	*c = row
	return nil
}

func (r *CustomerRepo) FindByID(ctx context.Context, id uint) (*domain.Customer, error) {
	var c domain.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, &domain.PersistenceError{Op: "find customer", Err: err}
	}
	return &c, nil
}
