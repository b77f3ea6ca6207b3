package product_controller

import (
	"log"
	"net/http"

	"github.com/al-mohaimin-farabi/pet-club-backend/config"
	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"github.com/gin-gonic/gin"
)

// GetProducts lists every document in the collection, image bytes included.
func (ctl *Controller) GetProducts(c *gin.Context) {
	log.Printf("[products] list %s", ctl.label)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, err := ctl.store.ListProducts(ctx, ctl.collection)
	if err != nil {
		log.Printf("[products] list %s failed: %v", ctl.label, err)
		c.JSON(http.StatusInternalServerError, models.Message("Database error"))
		return
	}

	c.JSON(http.StatusOK, products)
}
