// Package orderstatusrepo persists the order statuses administrators manage.
package orderstatusrepo

import (
	"backoffice/internal/adapters/out/postgres/pgutil"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderstatus"

	"github.com/google/uuid"
)

// OrderStatusDTO is the order_statuses table row.
type OrderStatusDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:100;not null;uniqueIndex"`
	Description string    `gorm:"size:500;not null"`
	pgutil.LifecycleDTO
}

func (OrderStatusDTO) TableName() string {
	return "order_statuses"
}

func fromDomain(s *orderstatus.OrderStatus) OrderStatusDTO {
	return OrderStatusDTO{
		ID:           s.ID().Bytes(),
		Name:         s.Name().String(),
		Description:  s.Description().String(),
		LifecycleDTO: pgutil.FromLifecycle(s.Lifecycle()),
	}
}

func toDomain(dto OrderStatusDTO) (*orderstatus.OrderStatus, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	name, err := kernel.NewName(dto.Name)
	if err != nil {
		return nil, err
	}
	description, err := kernel.NewDescription(dto.Description)
	if err != nil {
		return nil, err
	}
	lifecycle, err := dto.ToLifecycle()
	if err != nil {
		return nil, err
	}
	return orderstatus.RestoreOrderStatus(id, name, description, lifecycle)
}
