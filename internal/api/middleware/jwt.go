package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/linskybing/ticketboard/internal/apperrors"
	"github.com/linskybing/ticketboard/internal/config"
	"github.com/linskybing/ticketboard/pkg/response"
	"github.com/linskybing/ticketboard/pkg/types"
)

var jwtKey []byte

var errNoToken = errors.New("no token")

// Init sets the JWT signing key.
func Init() {
	jwtKey = []byte(config.JwtSecret)
}

// GenerateToken issues a signed token for userID. Tokens normally come
// from the identity provider; this is used by the token command and tests.
var GenerateToken = func(userID, username string, expireDuration time.Duration) (string, error) {
	claims := &types.Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expireDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    config.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ParseToken validates and extracts claims.
func ParseToken(tokenStr string) (*types.Claims, error) {
	claims := &types.Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}

// tokenFromRequest reads a bearer token from the Authorization header, the
// token cookie, or the token query parameter (browsers cannot set headers
// on websocket upgrades).
func tokenFromRequest(c *gin.Context) (string, error) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return "", errors.New("Authorization header format must be Bearer {token}")
		}
		return parts[1], nil
	}
	if cookie, err := c.Cookie("token"); err == nil && cookie != "" {
		return cookie, nil
	}
	if q := c.Query("token"); q != "" {
		return q, nil
	}
	return "", errNoToken
}

func abortUnauthenticated(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{
		Error: msg,
		Code:  apperrors.ErrUnauthenticated.Code,
	})
}

// JWTAuthMiddleware requires a valid token and stores its claims.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := tokenFromRequest(c)
		if err != nil {
			if errors.Is(err, errNoToken) {
				abortUnauthenticated(c, "Authorization required (header or cookie)")
				return
			}
			abortUnauthenticated(c, err.Error())
			return
		}

		claims, err := ParseToken(tokenStr)
		if err != nil {
			abortUnauthenticated(c, "Invalid token: "+err.Error())
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

// OptionalJWT stores claims when a token is present. Requests without a
// token continue as anonymous; a present but invalid token is rejected.
func OptionalJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := tokenFromRequest(c)
		if errors.Is(err, errNoToken) {
			c.Next()
			return
		}
		if err != nil {
			abortUnauthenticated(c, err.Error())
			return
		}

		claims, err := ParseToken(tokenStr)
		if err != nil {
			abortUnauthenticated(c, "Invalid token: "+err.Error())
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}
