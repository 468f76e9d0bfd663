package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/shop-booking/internal/config"
	"github.com/BruksfildServices01/shop-booking/internal/httperr"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// Claims carries the user id in sub and the platform role.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func SignToken(secret string, ttl time.Duration, userID uuid.UUID, role string, now time.Time) (string, error) {
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Missing Authorization header.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Expected a Bearer token.")
			return
		}

		var claims Claims
		token, err := jwt.ParseWithClaims(parts[1], &claims, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "Invalid or expired token.")
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			httperr.Unauthorized(c, "invalid_token_payload", "Invalid token payload.")
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, claims.Role)

		c.Next()
	}
}

// CurrentUser reads what AuthMiddleware stored.
func CurrentUser(c *gin.Context) (uuid.UUID, string, bool) {
	raw, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil, "", false
	}
	userID, ok := raw.(uuid.UUID)
	if !ok {
		return uuid.Nil, "", false
	}
	return userID, c.GetString(ContextUserRole), true
}
