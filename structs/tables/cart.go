package tables

import (
	"time"

	"github.com/google/uuid"
)

// CartLine is one (user, product, color) entry in a shopper's cart. The
// triple is unique; adding the same product+color again increments Quantity
// instead of inserting a second row.
type CartLine struct {
	tableName struct{}  `bun:"table:cart_lines,alias:cl"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `bun:"user_id,notnull,type:uuid" json:"user_id"`
	ProductID uuid.UUID `bun:"product_id,notnull,type:uuid" json:"product_id"`
	Color     string    `bun:"color,nullzero" json:"color,omitempty"`
	Quantity  int       `bun:"quantity,notnull,default:1" json:"quantity"`
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`

	Product *Product `bun:"rel:belongs-to,join:product_id=id" json:"product,omitempty"`
}

// WishlistEntry links a user to a liked product. Unique per (user, product);
// no quantity, no color.
type WishlistEntry struct {
	tableName struct{}  `bun:"table:wishlist_entries,alias:we"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `bun:"user_id,notnull,type:uuid" json:"user_id"`
	ProductID uuid.UUID `bun:"product_id,notnull,type:uuid" json:"product_id"`
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`

	Product *Product `bun:"rel:belongs-to,join:product_id=id" json:"product,omitempty"`
}
