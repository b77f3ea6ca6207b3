package product_controller

import (
	"log"
	"net/http"

	"github.com/al-mohaimin-farabi/pet-club-backend/config"
	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"github.com/al-mohaimin-farabi/pet-club-backend/policy"
	"github.com/al-mohaimin-farabi/pet-club-backend/utils"
	"github.com/gin-gonic/gin"
)

// CreateProduct inserts a new product from a multipart form with the image
// in the file field "img". Creation is open to any identity; when the client
// claims the temp_admin role the creator's details are embedded for audit
// only.
func (ctl *Controller) CreateProduct(c *gin.Context) {
	log.Printf("[products] create %s", ctl.label)

	if !ctl.authorize(c, policy.CreateProduct) {
		return
	}

	fileHeader, err := c.FormFile("img")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Message("Image file 'img' is required"))
		return
	}

	img, err := utils.ReadUploadedImage(fileHeader)
	if err != nil {
		log.Printf("[products] reading upload failed: %v", err)
		c.JSON(http.StatusBadRequest, models.Message("Could not read image upload"))
		return
	}

	product := models.Product{
		Animal:  c.PostForm("animal"),
		Title:   c.PostForm("title"),
		Brand:   c.PostForm("brand"),
		Price:   c.PostForm("price"),
		Stock:   c.PostForm("stock"),
		Img:     img,
		AddedBy: c.PostForm("addedBy"),
	}

	if product.Title == "" {
		c.JSON(http.StatusBadRequest, models.Message("Field 'title' is required"))
		return
	}

	// Temp-admin creations carry the creator's identity for traceability.
	// This never feeds back into authorization.
	if product.AddedBy == string(models.RoleTempAdmin) {
		email := c.PostForm("email")
		name := c.PostForm("name")
		if email != "" && name != "" {
			product.AddedByDetails = &models.AddedByDetails{Email: email, Name: name}
		} else {
			log.Printf("[products] temp_admin creation missing email or name, skipping details")
		}
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result, err := ctl.store.InsertProduct(ctx, ctl.collection, product)
	if err != nil {
		log.Printf("[products] insert %s failed: %v", ctl.label, err)
		c.JSON(http.StatusInternalServerError, models.Message("Failed to add product"))
		return
	}

	log.Printf("[products] %s added", ctl.label)
	c.JSON(http.StatusOK, result)
}
