package user_controller

import (
	"log"
	"net/http"

	"github.com/al-mohaimin-farabi/pet-club-backend/config"
	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"github.com/al-mohaimin-farabi/pet-club-backend/policy"
	"github.com/gin-gonic/gin"
)

// AssignAdmin promotes the target email to the admin role. Only the pinned
// super admin may do this; every other requester gets a 403.
func (ctl *Controller) AssignAdmin(c *gin.Context) {
	log.Println("[users] assign admin")

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
	if verdict := policy.Decide(policy.AssignAdmin, requester, ctl.superAdminEmail); !verdict.Allowed {
		log.Printf("[users] access denied: %s is not the super admin", req.Requester)
		c.JSON(http.StatusForbidden, models.Message(verdict.Message))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result, err := ctl.store.SetUserRole(ctx, req.Email, models.RoleAdmin)
	if err != nil {
		log.Printf("[users] error assigning admin role: %v", err)
		c.JSON(http.StatusInternalServerError, models.Message("Database error"))
		return
	}

	log.Printf("[users] admin role assigned to %s", req.Email)
	c.JSON(http.StatusOK, result)
}
