package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/al-mohaimin-farabi/pet-club-backend/config"
	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"github.com/al-mohaimin-farabi/pet-club-backend/policy"
	"github.com/al-mohaimin-farabi/pet-club-backend/store"
	"github.com/gin-gonic/gin"
)

// DeleteProduct removes one document. Deleting a missing id is a
// zero-mutation success, mirroring the store's delete semantics.
func (ctl *Controller) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[products] delete %s %s (admin protected)", ctl.label, id)

	if !ctl.authorize(c, policy.DeleteProduct) {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result, err := ctl.store.DeleteProduct(ctx, ctl.collection, id)
	if err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, models.Message("Invalid product ID"))
			return
		}
		log.Printf("[products] delete %s %s failed: %v", ctl.label, id, err)
		c.JSON(http.StatusInternalServerError, models.Message("Failed to delete product"))
		return
	}

	log.Printf("[products] deleted %s %s", ctl.label, id)
	c.JSON(http.StatusOK, result)
}
