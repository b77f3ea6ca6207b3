package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/al-mohaimin-farabi/pet-club-backend/config"
	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"github.com/al-mohaimin-farabi/pet-club-backend/services"
	"github.com/al-mohaimin-farabi/pet-club-backend/store"
	"github.com/gin-gonic/gin"
)

// UserFinder is the slice of the store this middleware needs.
type UserFinder interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AdminAuthMiddleware validates the bearer token, then requires the verified
// email to map to a user record with the admin role. Note there is no
// super-admin pin here: any admin passes, which is how the user listing has
// always behaved.
func AdminAuthMiddleware(verifier services.TokenVerifier, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.Message("Unauthorized, no token provided"))
			c.Abort()
			return
		}

		claims, err := verifier.VerifyIDToken(c.Request.Context(), token)
		if err != nil {
			log.Printf("[auth] invalid token: %v", err)
			c.JSON(http.StatusUnauthorized, models.Message("Unauthorized, invalid token"))
			c.Abort()
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		user, err := users.FindUserByEmail(ctx, claims.Email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.Message("User not found"))
			} else {
				log.Printf("[auth] failed to fetch user role: %v", err)
				c.JSON(http.StatusInternalServerError, models.Message("Database error"))
			}
			c.Abort()
			return
		}

		if user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, models.Message("Forbidden, user is not an admin"))
			c.Abort()
			return
		}

		c.Set("userEmail", claims.Email)
		c.Set("userName", claims.Name)
		c.Set("userRole", user.Role)

		c.Next()
	}
}
