// Package customerrepo provides the read-side repository for customer
// reference data. Customers are maintained outside the ordering flow, so
// the repository exposes lookups plus an insert used by demo seeding.
package customerrepo

import (
	"time"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:100"`
	Email       string    `gorm:"size:255"`
	Segment     int
	IsFirstTime bool
	CreatedAt   time.Time
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer entity to its database representation.
func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:          c.ID().Bytes(),
		Name:        c.Name(),
		Email:       c.Email(),
		Segment:     int(c.Segment()),
		IsFirstTime: c.IsFirstTime(),
		CreatedAt:   c.CreatedAt(),
	}
}

// toDomain converts a database DTO to a customer entity using RestoreCustomer.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		id,
		dto.Name,
		dto.Email,
		customer.Segment(dto.Segment),
		dto.IsFirstTime,
		dto.CreatedAt,
	)
}
