package tables

import (
	"time"

	"github.com/google/uuid"
)

// Category is the owning side of the two-level taxonomy. The schema has no
// ON DELETE CASCADE, so deletes must clear subcategories first.
type Category struct {
	tableName struct{}  `bun:"table:categories,alias:c"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name      string    `bun:"name,notnull,unique" json:"name"`
	Slug      string    `bun:"slug,notnull,unique" json:"slug"`
	Image     string    `bun:"image" json:"image,omitempty"`
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`

	Subcategories []Subcategory `bun:"rel:has-many,join:id=category_id" json:"subcategories,omitempty"`
}

type Subcategory struct {
	tableName  struct{}  `bun:"table:subcategories,alias:sc"`
	ID         uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	CategoryID uuid.UUID `bun:"category_id,notnull,type:uuid" json:"category_id"`
	Name       string    `bun:"name,notnull" json:"name"`
	Slug       string    `bun:"slug,notnull" json:"slug"`
	Image      string    `bun:"image" json:"image,omitempty"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}
