package order_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/al-mohaimin-farabi/pet-club-backend/config"
	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"github.com/al-mohaimin-farabi/pet-club-backend/store"
	"github.com/gin-gonic/gin"
)

func (ctl *Controller) DeleteOrder(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[orders] delete %s", id)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result, err := ctl.store.DeleteOrder(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, models.Message("Invalid order ID"))
			return
		}
		log.Printf("[orders] delete %s failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.Message("Failed to delete order"))
		return
	}

	log.Printf("[orders] deleted %s", id)
	c.JSON(http.StatusOK, result)
}
