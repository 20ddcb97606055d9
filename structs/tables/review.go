package tables

import (
	"time"

	"github.com/google/uuid"
)

// Review is one shopper's review of a product. A partial unique index on
// (product_id, user_id) keeps it to one review per pair.
type Review struct {
	tableName struct{}  `bun:"table:reviews,alias:r"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ProductID uuid.UUID `bun:"product_id,notnull,type:uuid" json:"product_id"`
	UserID    uuid.UUID `bun:"user_id,notnull,type:uuid" json:"user_id"`
	Rating    int       `bun:"rating,notnull" json:"rating"` // 1..5
	Comment   string    `bun:"comment" json:"comment,omitempty"`
	Photos    []string  `bun:"photos,array" json:"photos,omitempty"` // at most 5
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}
