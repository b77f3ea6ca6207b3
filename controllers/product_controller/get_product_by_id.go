package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/al-mohaimin-farabi/pet-club-backend/config"
	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"github.com/al-mohaimin-farabi/pet-club-backend/store"
	"github.com/gin-gonic/gin"
)

// GetProductByID fetches one document. A missing id answers 200 with a null
// body, which is what the storefront has always consumed.
func (ctl *Controller) GetProductByID(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[products] get %s %s", ctl.label, id)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, err := ctl.store.GetProduct(ctx, ctl.collection, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		if errors.Is(err, store.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, models.Message("Invalid product ID"))
			return
		}
		log.Printf("[products] get %s %s failed: %v", ctl.label, id, err)
		c.JSON(http.StatusInternalServerError, models.Message("Database error"))
		return
	}

	c.JSON(http.StatusOK, product)
}
