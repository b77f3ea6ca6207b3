package order_controller

import (
	"log"
	"net/http"

	"github.com/al-mohaimin-farabi/pet-club-backend/config"
	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"github.com/gin-gonic/gin"
)

// GetOrdersByEmail returns the orders owned by the given email.
func (ctl *Controller) GetOrdersByEmail(c *gin.Context) {
	email := c.Param("email")
	log.Printf("[orders] list for %s", email)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	orders, err := ctl.store.ListOrdersByEmail(ctx, email)
	if err != nil {
		log.Printf("[orders] list for %s failed: %v", email, err)
		c.JSON(http.StatusInternalServerError, models.Message("Database error"))
		return
	}

	c.JSON(http.StatusOK, orders)
}
