package tables

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog row. Category and subcategory are free-text labels as
// the admin typed them ("Festive" vs "Festive Gift" both occur in real data),
// which is why catalog resolution matches by substring instead of equality.
//
// Colors and Images are positionally aligned when both are present: Images[i]
// is understood to depict Colors[i]. The alignment is assumed, not enforced.
type Product struct {
	tableName         struct{}  `bun:"table:products,alias:p"`
	ID                uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Name              string    `bun:"name,notnull" json:"name"`
	Description       string    `bun:"description" json:"description,omitempty"`
	Price             int64     `bun:"price,notnull" json:"price"` // minor units
	Category          string    `bun:"category,notnull" json:"category"`
	Subcategory       string    `bun:"subcategory" json:"subcategory,omitempty"`
	Image             string    `bun:"image" json:"image,omitempty"` // primary image URL
	Images            []string  `bun:"images,array" json:"images,omitempty"`
	Colors            []string  `bun:"colors,array" json:"colors,omitempty"`
	Stock             int       `bun:"stock,notnull,default:0" json:"stock"`
	LowStockThreshold int       `bun:"low_stock_threshold,notnull,default:5" json:"low_stock_threshold"`
	CreatedAt         time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt         time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

// LowStock reports whether the product should be flagged on the inventory panel.
func (p *Product) LowStock() bool {
	return p.Stock <= p.LowStockThreshold
}
