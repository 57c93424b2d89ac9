package ds

import (
	"storerating/internal/app/role"

	"github.com/golang-jwt/jwt"
)

type JWTClaims struct {
	jwt.StandardClaims
	UserID string    `json:"user_id"`
	Role   role.Role `json:"role"`
}
