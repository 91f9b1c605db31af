package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	profileRepo "tutorlink/database/repository/profile"
	"tutorlink/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// JWTAuthMiddleware authenticates requests with a Bearer token. The token
// hash is checked against the auth cache first and the profile record on a
// cache miss, so a revoked session dies even before the token expires.
func JWTAuthMiddleware(profiles profileRepo.ProfileRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		profileID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || profileID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		computedHash := utils.HashToken(tokenString)

		if !tokenHashMatches(profiles, profileID, computedHash) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session is no longer valid"})
			return
		}

		c.Set("profileID", profileID)
		c.Next()
	}
}

func tokenHashMatches(profiles profileRepo.ProfileRepository, profileID, computedHash string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cacheKey := utils.AuthCachePrefix + profileID
	cached, err := utils.GetAuthCacheClient().Get(ctx, cacheKey).Result()
	if err == nil && cached != "" {
		return cached == computedHash
	}

	p, err := profiles.GetByIDWithProjection(profileID, bson.M{"id": 1, "token_hash": 1})
	if err != nil || p == nil || p.TokenHash == "" {
		return false
	}
	if p.TokenHash != computedHash {
		return false
	}

	// Refill the cache so the next request skips the database.
	_ = utils.GetAuthCacheClient().Set(ctx, cacheKey, p.TokenHash, 24*time.Hour).Err()
	return true
}

// ProfileID returns the authenticated profile ID set by JWTAuthMiddleware.
func ProfileID(c *gin.Context) string {
	v, ok := c.Get("profileID")
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}
