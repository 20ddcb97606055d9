package structs

import (
	"time"

	"giftingstudio_server/structs/tables"

	"github.com/google/uuid"
)

type ArgonParams struct {
	Memory  uint32
	Time    uint32
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

type AuthClaims struct {
	Sub   uuid.UUID `json:"sub"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
	Iat   time.Time `json:"iat"`
	Exp   time.Time `json:"exp"`
	Jti   uuid.UUID `json:"jti"`
}

// RequestCodeRequest asks the identity layer to send a one-time passcode.
// Exactly one of email or phone should be set; email wins when both are.
type RequestCodeRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,min=10,max=20"`
}

type VerifyCodeRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,min=10,max=20"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

type LogoutResponse struct {
	Message string `json:"message"`
}

type AuthResponse struct {
	User         *tables.User `json:"user"`
	AccessToken  string       `json:"-"`
	RefreshToken string       `json:"-"`
}
