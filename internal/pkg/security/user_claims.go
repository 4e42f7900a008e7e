package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	JWTSecret         string = "Fable"
	JWTExpirationTime        = time.Hour * 24 * 7
)

// UserClaims Token 载荷，sub 即用户 ID
type UserClaims struct {
	jwt.RegisteredClaims
}
