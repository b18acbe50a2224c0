package domain

import "time"

// Product represents a catalog item offered by a seller.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Color       string    `json:"color"`
	Price       float64   `json:"price"`
	Quantity    float64   `json:"quantity"`
	ShopName    string    `json:"shopName"`
	Brand       string    `json:"brand"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
