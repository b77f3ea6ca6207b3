package middleware

import (
	"net/http"
	"strings"

	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"github.com/al-mohaimin-farabi/pet-club-backend/services"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token from the Authorization header
// and stores the verified identity in the gin context.
func AuthMiddleware(verifier services.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.Message("Unauthorized, no token provided"))
			c.Abort()
			return
		}

		claims, err := verifier.VerifyIDToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.Message("Unauthorized, invalid token"))
			c.Abort()
			return
		}

		c.Set("userEmail", claims.Email)
		c.Set("userName", claims.Name)

		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get("userEmail")
	if !exists {
		return "", false
	}
	return email.(string), true
}

func GetUserNameFromContext(c *gin.Context) (string, bool) {
	name, exists := c.Get("userName")
	if !exists {
		return "", false
	}
	return name.(string), true
}
