package product

// CreateProductRequest represents the input for creating a product.
type CreateProductRequest struct {
	Name        string  `json:"name" form:"name" binding:"required,min=1,max=255"`
	Description string  `json:"description" form:"description" binding:"max=2048"`
	Price       float64 `json:"price" form:"price" binding:"required,gt=0"`
	Stock       int     `json:"stock" form:"stock" binding:"gte=0"`
	ImageURL    string  `json:"image_url" form:"image_url" binding:"omitempty,url,max=512"`
}

// UpdateProductRequest represents the input for updating a product.
type UpdateProductRequest struct {
	Name        string  `json:"name" form:"name" binding:"required,min=1,max=255"`
	Description string  `json:"description" form:"description" binding:"max=2048"`
	Price       float64 `json:"price" form:"price" binding:"required,gt=0"`
	Stock       int     `json:"stock" form:"stock" binding:"gte=0"`
	ImageURL    string  `json:"image_url" form:"image_url" binding:"omitempty,url,max=512"`
}
