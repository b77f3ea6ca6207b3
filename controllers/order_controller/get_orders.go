package order_controller

import (
	"log"
	"net/http"

	"github.com/al-mohaimin-farabi/pet-club-backend/config"
	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"github.com/gin-gonic/gin"
)

func (ctl *Controller) GetOrders(c *gin.Context) {
	log.Println("[orders] list")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	orders, err := ctl.store.ListOrders(ctx)
	if err != nil {
		log.Printf("[orders] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Message("Database error"))
		return
	}

	c.JSON(http.StatusOK, orders)
}
