// Package customerrepo persists customers. Passwords are stored as the
// AES ciphertext produced by kernel.PasswordCipher.
package customerrepo

import (
	"backoffice/internal/adapters/out/postgres/pgutil"
	"backoffice/internal/core/domain/model/customer"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the customers table row.
type CustomerDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"size:100;not null"`
	Email    string    `gorm:"size:254;not null;uniqueIndex"`
	Password []byte    `gorm:"type:bytea;not null"`
	Phone    string    `gorm:"size:16;not null"`
	IsAdmin  bool      `gorm:"not null;default:false"`
	pgutil.LifecycleDTO
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:           c.ID().Bytes(),
		Name:         c.Name().String(),
		Email:        c.Email().String(),
		Password:     c.Password().Ciphertext(),
		Phone:        c.Phone().String(),
		IsAdmin:      c.IsAdmin(),
		LifecycleDTO: pgutil.FromLifecycle(c.Lifecycle()),
	}
}

func toDomain(dto CustomerDTO, cipher *kernel.PasswordCipher) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	name, err := kernel.NewName(dto.Name)
	if err != nil {
		return nil, err
	}
	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	password, err := kernel.RestorePassword(dto.Password, cipher)
	if err != nil {
		return nil, err
	}
	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}
	lifecycle, err := dto.ToLifecycle()
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, name, email, password, phone, dto.IsAdmin, lifecycle)
}
