package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims are the JWT claims issued at login.
type UserClaims struct {
	UserID    uint   `json:"user_id"`
	AccountID uint   `json:"account_id"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}
