package middleware

import (
	"net/http"
	"strings"
	"time"

	"hostel-management-api/config"
	"hostel-management-api/store"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Tokens expire after two hours; there is no refresh, clients re-authenticate.
const tokenTTL = 2 * time.Hour

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a given identity
func GenerateToken(email string) (string, error) {
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// AuthRequired validates the JWT and injects the caller email into context.
// Malformed, expired, and tampered tokens are all rejected the same way.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set("email", claims.Email)
		c.Next()
	}
}

// AdminRequired looks the caller up in the users collection and aborts with
// 403 unless the stored role is admin. The live lookup (rather than a role
// claim baked into the token) means a demotion takes effect immediately.
func AdminRequired(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, err := st.IsAdmin(GetEmail(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify role"})
			c.Abort()
			return
		}
		if !admin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetEmail extracts the authenticated caller's email from context
func GetEmail(c *gin.Context) string {
	val, _ := c.Get("email")
	email, _ := val.(string)
	return email
}

// RequireSelf rejects the request when the path email does not match the
// authenticated email. Returns false after writing the 403.
func RequireSelf(c *gin.Context, email string) bool {
	if email != GetEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only access your own records"})
		c.Abort()
		return false
	}
	return true
}
