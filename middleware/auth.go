package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	technicianRepo "fieldserve/database/repository/technician"
	"fieldserve/models"
	"fieldserve/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	ContextActorID   = "actorID"
	ContextActorRole = "actorRole"
)

type cachedActor struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// JWTAuthMiddleware validates the bearer token, resolves it to an active user
// record via the token hash, and stores the actor's id and role on the
// request context. Resolved actors are cached in Redis to keep the lookup off
// the hot path.
func JWTAuthMiddleware(techRepo technicianRepo.TechnicianRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Validate the token signature and expiration.
		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)

		if actor, ok := lookupCachedActor(computedHash); ok {
			c.Set(ContextActorID, actor.ID)
			c.Set(ContextActorRole, actor.Role)
			c.Next()
			return
		}

		tech, err := techRepo.GetByTokenHash(computedHash)
		if err != nil || tech == nil || tech.Status != models.TechnicianStatusActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or user not found"})
			return
		}

		cacheActor(computedHash, cachedActor{ID: tech.ID, Role: tech.Role})
		c.Set(ContextActorID, tech.ID)
		c.Set(ContextActorRole, tech.Role)
		c.Next()
	}
}

// RequireRole gates a route group to the given roles. It must run after
// JWTAuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextActorRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this operation"})
	}
}

func lookupCachedActor(tokenHash string) (cachedActor, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := utils.GetAuthCacheClient().Get(ctx, utils.AuthCachePrefix+tokenHash).Result()
	if err != nil {
		return cachedActor{}, false
	}
	var actor cachedActor
	if err := json.Unmarshal([]byte(data), &actor); err != nil {
		return cachedActor{}, false
	}
	return actor, true
}

func cacheActor(tokenHash string, actor cachedActor) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := json.Marshal(actor)
	if err != nil {
		return
	}
	// Cache failures only cost a repo lookup on the next request.
	_ = utils.GetAuthCacheClient().Set(ctx, utils.AuthCachePrefix+tokenHash, data, utils.AuthCacheTTL).Err()
}
