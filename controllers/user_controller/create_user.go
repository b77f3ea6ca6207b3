package user_controller

import (
	"log"
	"net/http"

	"github.com/al-mohaimin-farabi/pet-club-backend/config"
	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"github.com/gin-gonic/gin"
)

// CreateUser inserts a user record after a storefront sign-up. The unique
// email index rejects duplicates; repeat sign-ins go through UpsertUser.
func (ctl *Controller) CreateUser(c *gin.Context) {
	log.Println("[users] create")

	var req models.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Message("Invalid request: "+err.Error()))
		return
	}

	user := models.User{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
		Role:        req.Role,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result, err := ctl.store.InsertUser(ctx, user)
	if err != nil {
		log.Printf("[users] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Message("Failed to add user"))
		return
	}

	log.Printf("[users] user added: %s", req.Email)
	c.JSON(http.StatusOK, result)
}
