package tables

import (
	"time"

	"github.com/google/uuid"
)

// User is created lazily the first time a passcode is verified. There is no
// password column: identity is established exclusively through one-time codes.
type User struct {
	tableName struct{}  `bun:"table:users,alias:u"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Email     string    `bun:"email,unique,nullzero" json:"email,omitempty"`
	Phone     string    `bun:"phone,unique,nullzero" json:"phone,omitempty"`
	Role      string    `bun:"role,notnull,default:'shopper'" json:"role"`
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	LastLogin time.Time `bun:"last_login,nullzero" json:"last_login,omitempty"`
}

const (
	RoleShopper = "shopper"
	RoleAdmin   = "admin"
)
