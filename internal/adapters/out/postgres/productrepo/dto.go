// Package productrepo persists the product catalogue.
package productrepo

import (
	"backoffice/internal/adapters/out/postgres/pgutil"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the products table row.
type ProductDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"size:100;not null;uniqueIndex"`
	Description string          `gorm:"size:500;not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Image       string          `gorm:"size:500;not null"`
	Available   bool            `gorm:"not null;default:true"`
	pgutil.LifecycleDTO
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:           p.ID().Bytes(),
		Name:         p.Name().String(),
		Description:  p.Description().String(),
		Price:        p.Price().Amount(),
		Image:        p.Image().String(),
		Available:    p.Available(),
		LifecycleDTO: pgutil.FromLifecycle(p.Lifecycle()),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
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
	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}
	image, err := kernel.NewImageURL(dto.Image)
	if err != nil {
		return nil, err
	}
	lifecycle, err := dto.ToLifecycle()
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, name, description, price, image, dto.Available, lifecycle)
}

func toDomainList(dtos []ProductDTO) ([]*product.Product, error) {
	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
