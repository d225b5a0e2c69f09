package request

// ProductRequest represents the product create/update request body
type ProductRequest struct {
	Title          string   `json:"title" binding:"required"`
	Images         []string `json:"images"`
	Price          float64  `json:"price" binding:"min=0"`
	InventoryCount int      `json:"inventory_count" binding:"min=0"`
	CategoryID     string   `json:"category_id"`
}

// CategoryRequest represents the category create/update request body
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug"`
}
