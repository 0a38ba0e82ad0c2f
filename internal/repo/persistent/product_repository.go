package persistent

import (
	"time"

	"github.com/enaszrekat/reuse-market-app/internal/entity"

	"gorm.io/gorm"
)

type ProductRepository interface {
	ListApproved() ([]*entity.Product, error)
	ListApprovedByUser(userID int64) ([]*entity.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// productRow is one aggregated listing row. Images is the comma-joined
// aggregate of COALESCE(image_path, image_name) in ascending image id, NULL
// when the product has no image rows.
type productRow struct {
	ID            int64
	Title         *string
	Description   *string
	Price         float64
	Type          *string
	Status        *string
	UserID        int64
	CreatedAt     time.Time
	OwnerName     *string
	OwnerUsername *string
	Images        *string
}

const listApprovedQuery = `
SELECT
    p.id,
    p.title,
    p.description,
    p.price,
    p.type,
    p.status,
    p.user_id,
    p.created_at,
    u.name AS owner_name,
    u.username AS owner_username,
    string_agg(COALESCE(pi.image_path, pi.image_name), ',' ORDER BY pi.id) AS images
FROM products p
LEFT JOIN users u ON p.user_id = u.id
LEFT JOIN product_images pi ON p.id = pi.product_id
WHERE p.status = 'approved'
GROUP BY p.id, u.name, u.username
ORDER BY p.created_at DESC`

const listApprovedByUserQuery = `
SELECT
    p.id,
    p.title,
    p.description,
    p.price,
    p.type,
    p.status,
    p.user_id,
    p.created_at,
    string_agg(COALESCE(pi.image_path, pi.image_name), ',' ORDER BY pi.id) AS images
FROM products p
LEFT JOIN product_images pi ON p.id = pi.product_id
WHERE p.user_id = ? AND p.status = 'approved'
GROUP BY p.id
ORDER BY p.created_at DESC`

func (r *productRepository) ListApproved() ([]*entity.Product, error) {
	var rows []productRow
	if err := r.db.Raw(listApprovedQuery).Scan(&rows).Error; err != nil {
		return nil, err
	}

	products := make([]*entity.Product, len(rows))
	for i := range rows {
		products[i] = ToProductEntity(&rows[i], string(entity.StatusPending))
	}
	return products, nil
}

func (r *productRepository) ListApprovedByUser(userID int64) ([]*entity.Product, error) {
	var rows []productRow
	if err := r.db.Raw(listApprovedByUserQuery, userID).Scan(&rows).Error; err != nil {
		return nil, err
	}

	products := make([]*entity.Product, len(rows))
	for i := range rows {
		products[i] = ToProductEntity(&rows[i], string(entity.StatusApproved))
	}
	return products, nil
}
