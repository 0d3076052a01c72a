package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/shelter_guard/internal/models"
	"github.com/shenikar/shelter_guard/internal/service"
	"github.com/sirupsen/logrus"
)

const accountContextKey = "account"

// AuthMiddleware - распознает вызывающего по Bearer токену и кладет аккаунт в контекст
func AuthMiddleware(identityService service.IdentityService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			log.Warn("Bearer token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		account, err := identityService.CurrentAccount(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			status := errorStatus(err)
			entry := log.WithError(err).WithField("method", "AuthMiddleware")
			if status == http.StatusUnauthorized {
				entry.Warn("Invalid access token")
				c.AbortWithStatusJSON(status, gin.H{"error": "invalid or expired token"})
				return
			}
			entry.Error("Failed to resolve caller")
			c.AbortWithStatusJSON(status, gin.H{"error": "service temporarily unavailable"})
			return
		}

		c.Set(accountContextKey, account)
		c.Next()
	}
}

// currentAccount достает аккаунт, положенный AuthMiddleware
func currentAccount(c *gin.Context) *models.Account {
	value, ok := c.Get(accountContextKey)
	if !ok {
		return nil
	}
	account, _ := value.(*models.Account)
	return account
}
