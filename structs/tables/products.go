package tables

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	tableName      struct{}  `bun:"table:products,alias:p"`
	ID             uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Title          string    `bun:"title,notnull" json:"title"`
	Description    string    `bun:"description,notnull" json:"description"`
	Price          uint64    `bun:"price,notnull" json:"price"`                         // minor-unit-free (whole KSH)
	CompareAtPrice *uint64   `bun:"compare_at_price" json:"compare_at_price,omitempty"` // strikethrough display price
	Stock          int       `bun:"stock,notnull" json:"stock"`
	InStock        bool      `bun:"in_stock,notnull" json:"in_stock"`
	Rating         *float64  `bun:"rating" json:"rating,omitempty"` // 0-5
	ReviewsCount   *int      `bun:"reviews_count" json:"reviews_count,omitempty"`
	ImageURL       string    `bun:"image_url" json:"image_url,omitempty"` // legacy single image, superseded by Images
	BrandID        uuid.UUID `bun:"brand_id,type:uuid,notnull" json:"brand_id"`
	CategoryID     uuid.UUID `bun:"category_id,type:uuid,notnull" json:"category_id"`
	CreatedAt      time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt      time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	Brand    *Brand         `bun:"rel:belongs-to,join:brand_id=id" json:"brand,omitempty"`
	Category *Category      `bun:"rel:belongs-to,join:category_id=id" json:"category,omitempty"`
	Images   []ProductImage `bun:"rel:has-many,join:id=product_id" json:"images,omitempty"` // slice is nil if no images
}

// ProductImage represents one gallery image of a product
type ProductImage struct {
	tableName  struct{}  `bun:"table:product_images,alias:pi"`
	ID         uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ProductID  uuid.UUID `bun:"product_id,type:uuid,notnull" json:"product_id"`
	ImageURL   string    `bun:"image_url,notnull" json:"image_url"`
	IsPrimary  bool      `bun:"is_primary,notnull" json:"is_primary"`
	OrderIndex int       `bun:"order_index,notnull" json:"order_index"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}
