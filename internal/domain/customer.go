package domain

import (
	"context"
	"time"
)

type ContactMethod string

const (
	ContactEmail ContactMethod = "Email"
	ContactPhone ContactMethod = "Phone"
	ContactMail  ContactMethod = "Mail"
)

var ContactMethods = []ContactMethod{ContactEmail, ContactPhone, ContactMail}

// ParseContactMethod acepta solo los literales exactos, sin recortar ni normalizar mayúsculas.
func ParseContactMethod(s string) (ContactMethod, bool) {
	for _, m := range ContactMethods {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// Field identifica un campo del formulario. FieldOrder es el orden en que se validan.
type Field string

const (
	FieldName             Field = "name"
	FieldBirthday         Field = "birthday"
	FieldEmail            Field = "email"
	FieldPhone            Field = "phone"
	FieldAddress          Field = "address"
	FieldPreferredContact Field = "preferred_contact"
)

var FieldOrder = []Field{FieldName, FieldBirthday, FieldEmail, FieldPhone, FieldAddress, FieldPreferredContact}

// CustomerInput son los valores crudos tal como llegan del formulario.
type CustomerInput struct {
	Name             string `json:"name"`
	Birthday         string `json:"birthday"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	PreferredContact string `json:"preferred_contact"`
}

func CustomerInputFromMap(m map[string]string) CustomerInput {
	return CustomerInput{
		Name:             m[string(FieldName)],
		Birthday:         m[string(FieldBirthday)],
		Email:            m[string(FieldEmail)],
		Phone:            m[string(FieldPhone)],
		Address:          m[string(FieldAddress)],
		PreferredContact: m[string(FieldPreferredContact)],
	}
}

func (in CustomerInput) Value(f Field) string {
	switch f {
	case FieldName:
		return in.Name
	case FieldBirthday:
		return in.Birthday
	case FieldEmail:
		return in.Email
	case FieldPhone:
		return in.Phone
	case FieldAddress:
		return in.Address
	case FieldPreferredContact:
		return in.PreferredContact
	}
	return ""
}

type Customer struct {
	ID               uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string        `gorm:"type:text;not null" json:"name"`
	Birthday         string        `gorm:"type:text;not null" json:"birthday"` // YYYY-MM-DD
	Email            string        `gorm:"type:text;not null" json:"email"`
	Phone            string        `gorm:"type:text;not null" json:"phone"`
	Address          string        `gorm:"type:text;not null" json:"address"`
	PreferredContact ContactMethod `gorm:"type:text;not null" json:"preferred_contact"`
	CreatedAt        time.Time     `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Customer) TableName() string { return "customers" }

// NewCustomer arma el registro a persistir; ID y CreatedAt los asigna el repo.
func NewCustomer(in CustomerInput) *Customer {
	return &Customer{
		Name:             in.Name,
		Birthday:         in.Birthday,
		Email:            in.Email,
		Phone:            in.Phone,
		Address:          in.Address,
		PreferredContact: ContactMethod(in.PreferredContact),
	}
}

type CustomerRepo interface {
	Initialize(ctx context.Context) error
	Append(ctx context.Context, c *Customer) error
	FindByID(ctx context.Context, id uint) (*Customer, error)
}
