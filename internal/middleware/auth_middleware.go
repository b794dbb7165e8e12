package middleware

import (
	"net/http"
	"strings"

	"ai-tools-api/internal/services"
	"ai-tools-api/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthMiddleware verifies the bearer token on protected routes and attaches
// the resolved user to the request context. It performs no writes; every
// rejection short-circuits with a 401 and the same generic body.
func AuthMiddleware(service *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c)
		if token == "" {
			rejectUnauthorized(c)
			return
		}

		userID, err := service.ParseAccessToken(token)
		if err != nil {
			rejectUnauthorized(c)
			return
		}

		oid, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			rejectUnauthorized(c)
			return
		}

		// A token can outlive its user; a vanished account is a 401.
		u, err := service.CurrentUser(c.Request.Context(), oid)
		if err != nil {
			rejectUnauthorized(c)
			return
		}

		ctx := services.WithCurrentUser(c.Request.Context(), u)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func rejectUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, httpdto.NewMessageResponse("Not authorized"))
	c.Abort()
}

func extractBearer(c *gin.Context) string {
	value := c.GetHeader("Authorization")
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
