package entity

import "time"

// Product is the gateway's read-model of a catalog product.
type Product struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	Images         []string  `json:"images"`
	Price          float64   `json:"price"`
	InventoryCount int       `json:"inventory_count"`
	Variants       []Variant `json:"variants"`
	CategoryID     string    `json:"category_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// Variant is one purchasable variation of a product (size, colour, ...).
type Variant struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// Category groups products in the catalog.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ProductCount int    `json:"product_count"`
}
