package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/al-mohaimin-farabi/pet-club-backend/config"
	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"github.com/al-mohaimin-farabi/pet-club-backend/policy"
	"github.com/al-mohaimin-farabi/pet-club-backend/store"
	"github.com/al-mohaimin-farabi/pet-club-backend/utils"
	"github.com/gin-gonic/gin"
)

// UpdateProduct is the PUT handler: whole-record replace. Every field is
// written from the submitted form, so a client that wants to keep the stored
// image must echo it back in the img field; a fresh upload in the img file
// field wins over the echoed value. Updating a missing id is a zero-mutation
// success.
func (ctl *Controller) UpdateProduct(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[products] update %s %s (admin protected)", ctl.label, id)

	if !ctl.authorize(c, policy.UpdateProduct) {
		return
	}

	var img []byte
	if fileHeader, err := c.FormFile("img"); err == nil {
		log.Printf("[products] processing new image for %s", ctl.label)
		img, err = utils.ReadUploadedImage(fileHeader)
		if err != nil {
			log.Printf("[products] reading upload failed: %v", err)
			c.JSON(http.StatusBadRequest, models.Message("Could not read image upload"))
			return
		}
	} else {
		log.Printf("[products] no new image provided, using submitted value")
		img, err = utils.DecodeEchoedImage(c.PostForm("img"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.Message("Invalid img field"))
			return
		}
	}

	product := models.Product{
		Animal: c.PostForm("animal"),
		Title:  c.PostForm("title"),
		Brand:  c.PostForm("brand"),
		Price:  c.PostForm("price"),
		Stock:  c.PostForm("stock"),
		Img:    img,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result, err := ctl.store.ReplaceProduct(ctx, ctl.collection, id, product)
	if err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, models.Message("Invalid product ID"))
			return
		}
		log.Printf("[products] update %s %s failed: %v", ctl.label, id, err)
		c.JSON(http.StatusInternalServerError, models.Message("An error occurred while updating the product"))
		return
	}

	log.Printf("[products] updated %s %s", ctl.label, id)
	c.JSON(http.StatusOK, result)
}
