package model

import "time"

type ProductModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:numeric(12,2);not null;default:0" json:"price"`
	Type        string    `gorm:"type:varchar(50);not null;default:'sell'" json:"type"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	UserID      int64     `gorm:"not null;index" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`

	Images []ProductImageModel `gorm:"foreignKey:ProductID" json:"images,omitempty"`
}

func (ProductModel) TableName() string {
	return "products"
}

// ProductImageModel carries one gallery slot. Exactly one of ImagePath and
// ImageName is populated; gallery order is ascending id.
type ProductImageModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64     `gorm:"not null;index" json:"product_id"`
	ImagePath *string   `gorm:"type:varchar(500)" json:"image_path"`
	ImageName *string   `gorm:"type:varchar(255)" json:"image_name"`
	CreatedAt time.Time `json:"created_at"`
}

func (ProductImageModel) TableName() string {
	return "product_images"
}
