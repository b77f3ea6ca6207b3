package user_controller

import (
	"log"
	"net/http"

	"github.com/al-mohaimin-farabi/pet-club-backend/config"
	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"github.com/gin-gonic/gin"
)

// UpsertUser writes the user record keyed by email, creating it when absent.
func (ctl *Controller) UpsertUser(c *gin.Context) {
	log.Println("[users] upsert")

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

	result, err := ctl.store.UpsertUser(ctx, user)
	if err != nil {
		log.Printf("[users] upsert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Message("Failed to update user"))
		return
	}

	log.Printf("[users] user updated: %s", req.Email)
	c.JSON(http.StatusOK, result)
}
