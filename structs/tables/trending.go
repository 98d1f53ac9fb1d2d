package tables

import (
	"time"

	"github.com/google/uuid"
)

// TrendingPerfume is an admin-curated, ranked association between a product
// and a trending display slot. OrderIndex values are pairwise-distinct and
// define the display order.
type TrendingPerfume struct {
	tableName  struct{}  `bun:"table:trending_perfumes,alias:tp"`
	ID         uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ProductID  uuid.UUID `bun:"product_id,type:uuid,notnull" json:"product_id"`
	OrderIndex int       `bun:"order_index,notnull" json:"order_index"`
	IsActive   bool      `bun:"is_active,notnull" json:"is_active"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`

	Product *Product `bun:"rel:belongs-to,join:product_id=id" json:"product,omitempty"`
}
