package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"technomech-api/config"
)

// SessionCookieName is the http-only cookie holding the admin session token.
const SessionCookieName = "auth_token"

// SessionTTL is how long an admin session stays valid.
const SessionTTL = 24 * time.Hour

type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// NewSessionToken issues a signed session token for an authenticated admin.
func NewSessionToken(username string) (string, error) {
	claims := SessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret())
}

// AdminAuthMiddleware validates the admin session cookie. All failures
// answer a bare 401; the reason (missing cookie vs. bad token) is not
// distinguished in the response.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		token, err := jwt.ParseWithClaims(cookie, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
			return config.JWTSecret(), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*SessionClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set("adminUsername", claims.Username)
		c.Next()
	}
}
