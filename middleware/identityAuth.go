package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"brewdesk/services/user"
	"brewdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// IdentityAuthMiddleware authenticates requests carrying a token minted by
// the external identity provider. On a valid token it resolves (and lazily
// syncs) the local user row and sets "userID" in the request context.
// Verdicts are cached in Redis keyed by subject and token hash so repeat
// requests skip the database.
func IdentityAuthMiddleware(userSvc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		claims, err := utils.VerifyIdentityToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + claims.Subject

		authCache := utils.GetAuthCacheClient()
		cacheEnabled := true
		if authCache == nil {
			log.Printf("WARNING: Auth cache client not available. Falling back to DB lookup.")
			cacheEnabled = false
		}

		// Cache hit: the cached value is "tokenHash:localUserID".
		if cacheEnabled {
			cached, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if hash, userID, ok := splitAuthCacheValue(cached); ok && hash == computedHash {
					_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
					c.Set("userID", userID)
					c.Set("externalID", claims.Subject)
					c.Next()
					return
				}
				// Different token for the same subject: fall through and re-resolve.
			} else if err != redis.Nil {
				log.Printf("WARNING: Error retrieving auth cache key: %v. Falling back to DB lookup.", err)
			}
		}

		// Cache miss: resolve the local user, syncing it on first sight.
		usr, err := userSvc.GetUserByExternalID(claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication error",
				"code":  0,
			})
			return
		}
		if usr == nil {
			usr, err = userSvc.Sync(*claims)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Authentication error",
					"code":  0,
				})
				return
			}
		}

		if cacheEnabled {
			_ = authCache.Set(ctx, cacheKey, computedHash+":"+usr.ID, utils.AuthCacheTTL).Err()
		}

		c.Set("userID", usr.ID)
		c.Set("externalID", claims.Subject)
		c.Next()
	}
}

func splitAuthCacheValue(value string) (tokenHash, userID string, ok bool) {
	idx := strings.IndexByte(value, ':')
	if idx <= 0 || idx == len(value)-1 {
		return "", "", false
	}
	return value[:idx], value[idx+1:], true
}
