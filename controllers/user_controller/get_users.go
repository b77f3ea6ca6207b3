package user_controller

import (
	"log"
	"net/http"

	"github.com/al-mohaimin-farabi/pet-club-backend/config"
	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"github.com/gin-gonic/gin"
)

// GetUsers lists every user record. The admin check lives in the route's
// AdminAuthMiddleware; any admin passes, the super-admin pin is not applied
// here.
func (ctl *Controller) GetUsers(c *gin.Context) {
	log.Println("[users] list (admin protected)")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	users, err := ctl.store.ListUsers(ctx)
	if err != nil {
		log.Printf("[users] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Message("Database error"))
		return
	}

	c.JSON(http.StatusOK, users)
}
