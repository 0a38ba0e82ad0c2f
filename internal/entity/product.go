package entity

import "time"

type ProductStatus string

const (
	StatusPending  ProductStatus = "pending"
	StatusApproved ProductStatus = "approved"
)

// Product is a listing row as served to clients. Images is the normalized
// ordered gallery; Image mirrors its first element for older clients and is
// null when the gallery is empty.
type Product struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Type          string    `json:"type"`
	Status        string    `json:"status"`
	UserID        int64     `json:"user_id"`
	CreatedAt     time.Time `json:"created_at"`
	OwnerName     *string   `json:"owner_name,omitempty"`
	OwnerUsername *string   `json:"owner_username,omitempty"`
	Images        []string  `json:"images"`
	Image         *string   `json:"image"`
}
