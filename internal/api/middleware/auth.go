package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"golf-arbitri/backend/pkg/jwt"
	"golf-arbitri/backend/pkg/redis"
	"golf-arbitri/backend/pkg/response"
)

// JWTAuth validates the Authorization: Bearer <token> header, rejects
// blacklisted tokens and injects the caller's identity into the context.
// A nil redis client skips the blacklist check.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "malformed authorization header")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "token invalid or expired")
			c.Abort()
			return
		}
		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "wrong token type")
			c.Abort()
			return
		}

		if rdb != nil {
			revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && revoked {
				response.Unauthorized(c, 10002, "token revoked")
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_type", claims.UserType)
		c.Set("zone_id", claims.ZoneID)
		c.Set("claims", claims)

		c.Next()
	}
}

// RoleAuth allows only the listed user types through.
func RoleAuth(allowedTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType, exists := c.Get("user_type")
		if !exists {
			response.Unauthorized(c, 10002, "not authenticated")
			c.Abort()
			return
		}

		current := userType.(string)
		for _, t := range allowedTypes {
			if current == t {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "insufficient privileges")
		c.Abort()
	}
}
