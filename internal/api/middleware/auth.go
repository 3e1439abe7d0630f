package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/sundevilsync/sds-backend/internal/domain"
	"github.com/sundevilsync/sds-backend/internal/logger"
	"github.com/sundevilsync/sds-backend/internal/store/schema"
)

const (
	// AccountIDKey is the gin context key holding the authenticated account id
	AccountIDKey = "auth_account_id"
	// RoleKey is the gin context key holding the authenticated account role
	RoleKey = "auth_role"
)

// AuthConfig holds token signing configuration
type AuthConfig struct {
	// Secret is the HMAC signing key
	Secret string
	// TokenTTL bounds token lifetime
	TokenTTL time.Duration
}

// Claims are the JWT claims issued at login
type Claims struct {
	AccountID int64  `json:"account_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs a token for the account
func IssueToken(cfg AuthConfig, account *schema.Account, now time.Time) (string, error) {
	if cfg.Secret == "" {
		return "", errors.New("JWT secret not configured")
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	claims := Claims{
		AccountID: account.ID,
		Role:      string(account.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ParseToken validates a signed token and returns its claims
func ParseToken(cfg AuthConfig, tokenString string) (*Claims, error) {
	if cfg.Secret == "" {
		return nil, errors.New("JWT secret not configured")
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Auth returns a gin middleware validating the Bearer token and storing the
// account id and role in the request context
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, errors.New("missing Authorization header"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortUnauthorized(c, errors.New("invalid Authorization header format"))
			return
		}

		claims, err := ParseToken(cfg, parts[1])
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		c.Set(AccountIDKey, claims.AccountID)
		c.Set(RoleKey, domain.Role(claims.Role))
		c.Next()
	}
}

// RequireRoles returns a gin middleware that rejects authenticated requests
// whose role is not in the allowed set. Must run after Auth.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := Role(c)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": gin.H{
				"code":    "forbidden",
				"message": "Insufficient role",
			},
		})
	}
}

// AccountID returns the authenticated account id, zero when unauthenticated
func AccountID(c *gin.Context) int64 {
	if v, ok := c.Get(AccountIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// Role returns the authenticated account role, empty when unauthenticated
func Role(c *gin.Context) domain.Role {
	if v, ok := c.Get(RoleKey); ok {
		if role, ok := v.(domain.Role); ok {
			return role
		}
	}
	return ""
}

func abortUnauthorized(c *gin.Context, err error) {
	logger.Warn("Authentication failed",
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("client_ip", c.ClientIP()),
	)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "unauthorized",
			"message": "Authentication failed",
			"details": err.Error(),
		},
	})
}
