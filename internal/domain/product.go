package domain

import "context"

// Product is a storefront catalog entry.
type Product struct {
	BaseModel
	Name        string  `gorm:"size:255;not null" json:"name"`
	Description string  `gorm:"size:2048" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Currency    string  `gorm:"size:8;not null;default:USD" json:"currency"`
	Stock       int     `gorm:"not null;default:0" json:"stock"`
	ImageURL    string  `gorm:"size:512" json:"image_url"`
}

// ProductRepository defines the data access interface for products.
type ProductRepository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id uint) (*Product, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Product], error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uint) error
}
