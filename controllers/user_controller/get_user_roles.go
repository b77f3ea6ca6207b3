package user_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/al-mohaimin-farabi/pet-club-backend/config"
	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"github.com/al-mohaimin-farabi/pet-club-backend/policy"
	"github.com/al-mohaimin-farabi/pet-club-backend/store"
	"github.com/gin-gonic/gin"
)

// GetUserRoles reports whether the given email is the super admin and/or a
// temporary admin. Unknown emails get {false, false} rather than a 404 so the
// client can call this unconditionally after sign-in.
func (ctl *Controller) GetUserRoles(c *gin.Context) {
	email := c.Param("email")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	user, err := ctl.store.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, models.RolesResponse{})
			return
		}
		log.Printf("[users] role lookup failed for %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, models.Message("Database error"))
		return
	}

	c.JSON(http.StatusOK, models.RolesResponse{
		SuperAdmin: policy.IsSuperAdmin(user.Role, user.Email, ctl.superAdminEmail),
		TempAdmin:  user.Role == models.RoleTempAdmin,
	})
}
