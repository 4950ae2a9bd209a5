// utils/auth.go
package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Generate JWT secret key (run once initially)
func GenerateJWTSecret() string {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic("failed to generate JWT secret")
	}
	return base64.StdEncoding.EncodeToString(key)
}

// Hash password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// Check password
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// TokenExpiryHours returns the configured token lifetime in hours,
// defaulting to 24. The session cookie uses the same value.
func TokenExpiryHours() int {
	if env := os.Getenv("JWT_EXPIRY_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil {
			return h
		}
	}
	return 24
}

// Generate JWT token carrying the user id and role claims
func GenerateToken(userID, role string) (string, error) {
	expiryHours := TokenExpiryHours()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(time.Duration(expiryHours) * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	})

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	return token.SignedString([]byte(secret))
}

// parseToken verifies the bearer token and returns its claims.
func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// APIVersionMiddleware rejects any API version other than v1. The version
// comes from the API-Version header or the /api/vN path segment.
func APIVersionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		version := c.GetHeader("API-Version")
		if version == "" {
			for _, seg := range strings.Split(c.Request.URL.Path, "/") {
				if len(seg) > 1 && seg[0] == 'v' {
					if _, err := strconv.Atoi(seg[1:]); err == nil {
						version = seg
						break
					}
				}
			}
		}
		if version != "" && version != "v1" {
			APIAuthError(c, T(ResolveLocale(c), MsgBadAPIVersion))
			return
		}
		c.Next()
	}
}

// AuthMiddleware verifies the bearer token and attaches the resolved
// identity (userId, userRole) to the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			APIAuthError(c, T(ResolveLocale(c), MsgAuthRequired))
			return
		}

		if len(tokenString) > 7 && strings.ToUpper(tokenString[0:6]) == "BEARER" {
			tokenString = tokenString[7:]
		}

		claims, err := parseToken(tokenString)
		if err != nil {
			APIAuthError(c, T(ResolveLocale(c), MsgAuthRequired))
			return
		}

		c.Set("userId", claims["sub"])
		c.Set("userRole", claims["role"])
		c.Next()
	}
}

// AdminRequired allows only users whose role claim is "admin",
// case-insensitively. Must run after AuthMiddleware.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("userRole")
		roleStr, _ := role.(string)
		if !exists || !strings.EqualFold(roleStr, "admin") {
			APIAuthError(c, T(ResolveLocale(c), MsgAuthRequired))
			return
		}
		c.Next()
	}
}

// ClientAuthMiddleware requires the client_token cookie to be present.
// The value is opaque; it is exposed to handlers as the client id.
func ClientAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("client_token")
		if err != nil || token == "" {
			APIAuthError(c, T(ResolveLocale(c), MsgAuthRequired))
			return
		}
		c.Set("clientId", token)
		c.Next()
	}
}
