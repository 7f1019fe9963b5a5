package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the identity carried by tokens from the identity provider.
// UserID is the provider's opaque subject id.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
