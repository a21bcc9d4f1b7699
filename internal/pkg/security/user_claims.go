package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	JWTSecret         string = "careerbridge-dev-secret"
	JWTExpirationTime        = time.Hour * 24
)

// UserClaims carries the identity baked into a token.
type UserClaims struct {
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}
