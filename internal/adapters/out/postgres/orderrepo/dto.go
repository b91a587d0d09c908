// Package orderrepo persists orders and their details. Customer, status and
// product names are not stored on the order; they are joined in on load.
package orderrepo

import (
	"backoffice/internal/adapters/out/postgres/pgutil"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders table row. CustomerName and StatusName are filled
// by joins and never written.
type OrderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	StatusID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	DeliveryLocation string          `gorm:"size:200;not null"`
	Total            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	pgutil.LifecycleDTO

	CustomerName string      `gorm:"->;-:migration"`
	StatusName   string      `gorm:"->;-:migration"`
	Details      []DetailDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// DetailDTO is the order_details table row. Subtotal is stored so that lines
// can be sorted by it; on load it is recomputed from quantity and unit price.
type DetailDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	pgutil.LifecycleDTO

	ProductName string `gorm:"->;-:migration"`
}

func (DetailDTO) TableName() string {
	return "order_details"
}

func fromDomain(o *order.Order) OrderDTO {
	details := make([]DetailDTO, 0, len(o.Details()))
	for _, d := range o.Details() {
		details = append(details, detailFromDomain(d))
	}

	return OrderDTO{
		ID:               o.ID().Bytes(),
		CustomerID:       o.Customer().ID().Bytes(),
		StatusID:         o.Status().ID().Bytes(),
		DeliveryLocation: o.DeliveryLocation().String(),
		Total:            o.Total().Amount(),
		LifecycleDTO:     pgutil.FromLifecycle(o.Lifecycle()),
		Details:          details,
	}
}

func detailFromDomain(d *order.Detail) DetailDTO {
	return DetailDTO{
		ID:           d.ID().Bytes(),
		OrderID:      d.OrderID().Bytes(),
		ProductID:    d.Product().ID().Bytes(),
		Quantity:     d.Quantity(),
		UnitPrice:    d.UnitPrice().Amount(),
		Subtotal:     d.Subtotal().Amount(),
		LifecycleDTO: pgutil.FromLifecycle(d.Lifecycle()),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customer, err := reference(dto.CustomerID, dto.CustomerName)
	if err != nil {
		return nil, err
	}
	status, err := reference(dto.StatusID, dto.StatusName)
	if err != nil {
		return nil, err
	}
	location, err := order.NewDeliveryLocation(dto.DeliveryLocation)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewPrice(dto.Total)
	if err != nil {
		return nil, err
	}
	lifecycle, err := dto.ToLifecycle()
	if err != nil {
		return nil, err
	}

	details := make([]*order.Detail, 0, len(dto.Details))
	for _, detailDTO := range dto.Details {
		d, detailErr := detailToDomain(detailDTO)
		if detailErr != nil {
			return nil, detailErr
		}
		details = append(details, d)
	}

	return order.RestoreOrder(id, customer, status, location, total, details, lifecycle)
}

func detailToDomain(dto DetailDTO) (*order.Detail, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	product, err := reference(dto.ProductID, dto.ProductName)
	if err != nil {
		return nil, err
	}
	unitPrice, err := kernel.NewPrice(dto.UnitPrice)
	if err != nil {
		return nil, err
	}
	lifecycle, err := dto.ToLifecycle()
	if err != nil {
		return nil, err
	}

	return order.RestoreDetail(id, orderID, product, dto.Quantity, unitPrice, lifecycle)
}

func reference(rawID uuid.UUID, rawName string) (order.Reference, error) {
	id, err := kernel.UUIDFromBytes(rawID[:])
	if err != nil {
		return order.Reference{}, err
	}
	name, err := kernel.NewName(rawName)
	if err != nil {
		return order.Reference{}, err
	}
	return order.NewReference(id, name)
}
