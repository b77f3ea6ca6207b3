package user_controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/al-mohaimin-farabi/pet-club-backend/config"
	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"github.com/al-mohaimin-farabi/pet-club-backend/policy"
	"github.com/al-mohaimin-farabi/pet-club-backend/store"
	"github.com/gin-gonic/gin"
)

// AssignTempAdmin grants the temp_admin role to the target email. The only
// requirements are that a requester field is present and that the target
// exists as a user record; the requester's own role is deliberately not
// checked (long-standing loose rule, see the policy package).
func (ctl *Controller) AssignTempAdmin(c *gin.Context) {
	log.Println("[users] assign temp admin")

	var req models.RoleAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Requester == "" {
		log.Println("[users] access denied: missing or incomplete request payload")
		c.JSON(http.StatusBadRequest, models.Message(
			"Request is incomplete. Please ensure the 'email' and 'requester' are provided."))
		return
	}

	requester, ok := ctl.resolveRequester(c, req.Requester)
	if !ok {
		return
	}
	if verdict := policy.Decide(policy.AssignTempAdmin, requester, ctl.superAdminEmail); !verdict.Allowed {
		c.JSON(http.StatusForbidden, models.Message(verdict.Message))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// The target must already exist; this is a role change, not an invite.
	if _, err := ctl.store.FindUserByEmail(ctx, req.Email); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Printf("[users] user with email %s does not exist", req.Email)
			c.JSON(http.StatusNotFound, models.Message(fmt.Sprintf(
				"User with email '%s' was not found in the system. Please check the email and try again.", req.Email)))
			return
		}
		log.Printf("[users] target lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Message("Database error"))
		return
	}

	result, err := ctl.store.SetUserRole(ctx, req.Email, models.RoleTempAdmin)
	if err != nil || result.ModifiedCount == 0 {
		log.Printf("[users] error assigning temp_admin role: %v", err)
		c.JSON(http.StatusInternalServerError, models.Message(
			"There was an issue assigning the 'temp_admin' role. Please try again later."))
		return
	}

	log.Printf("[users] temp_admin role assigned to %s", req.Email)
	c.JSON(http.StatusOK, models.Message(fmt.Sprintf(
		"Temporary admin role successfully assigned to %s.", req.Email)))
}
