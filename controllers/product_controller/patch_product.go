package product_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/al-mohaimin-farabi/pet-club-backend/config"
	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"github.com/al-mohaimin-farabi/pet-club-backend/policy"
	"github.com/al-mohaimin-farabi/pet-club-backend/store"
	"github.com/al-mohaimin-farabi/pet-club-backend/utils"
	"github.com/gin-gonic/gin"
)

// patchRequest is the JSON body variant of a PATCH. Nil means "not provided".
type patchRequest struct {
	Animal *string `json:"animal"`
	Title  *string `json:"title"`
	Brand  *string `json:"brand"`
	Price  *string `json:"price"`
	Stock  *string `json:"stock"`
	Img    *string `json:"img"`
}

// PatchProduct is the merge-semantics update: only fields present in the
// payload reach the $set document. With no img field and no file upload the
// stored image stays byte-for-byte untouched, unlike PUT.
func (ctl *Controller) PatchProduct(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[products] patch %s %s (admin protected)", ctl.label, id)

	if !ctl.authorize(c, policy.UpdateProduct) {
		return
	}

	isMultipart := strings.Contains(c.GetHeader("Content-Type"), "multipart/form-data")

	var patch models.ProductPatch
	var ok bool
	if isMultipart {
		patch, ok = ctl.patchFromForm(c)
	} else {
		patch, ok = ctl.patchFromJSON(c)
	}
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result, err := ctl.store.PatchProduct(ctx, ctl.collection, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, models.Message("Invalid product ID"))
			return
		}
		log.Printf("[products] patch %s %s failed: %v", ctl.label, id, err)
		c.JSON(http.StatusInternalServerError, models.Message("An error occurred while updating the product"))
		return
	}

	log.Printf("[products] updated %s %s", ctl.label, id)
	c.JSON(http.StatusOK, result)
}

func (ctl *Controller) patchFromForm(c *gin.Context) (models.ProductPatch, bool) {
	var patch models.ProductPatch

	if v := c.PostForm("animal"); v != "" {
		patch.Animal = &v
	}
	if v := c.PostForm("title"); v != "" {
		patch.Title = &v
	}
	if v := c.PostForm("brand"); v != "" {
		patch.Brand = &v
	}
	if v := c.PostForm("price"); v != "" {
		patch.Price = &v
	}
	if v := c.PostForm("stock"); v != "" {
		patch.Stock = &v
	}

	if fileHeader, err := c.FormFile("img"); err == nil {
		log.Printf("[products] processing new image for %s", ctl.label)
		img, err := utils.ReadUploadedImage(fileHeader)
		if err != nil {
			log.Printf("[products] reading upload failed: %v", err)
			c.JSON(http.StatusBadRequest, models.Message("Could not read image upload"))
			return patch, false
		}
		patch.Img = img
	} else if v := c.PostForm("img"); v != "" {
		img, err := utils.DecodeEchoedImage(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.Message("Invalid img field"))
			return patch, false
		}
		patch.Img = img
	}

	return patch, true
}

func (ctl *Controller) patchFromJSON(c *gin.Context) (models.ProductPatch, bool) {
	var req patchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Message("Invalid request: "+err.Error()))
		return models.ProductPatch{}, false
	}

	patch := models.ProductPatch{
		Animal: req.Animal,
		Title:  req.Title,
		Brand:  req.Brand,
		Price:  req.Price,
		Stock:  req.Stock,
	}

	if req.Img != nil && *req.Img != "" {
		img, err := utils.DecodeEchoedImage(*req.Img)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.Message("Invalid img field"))
			return models.ProductPatch{}, false
		}
		patch.Img = img
	}

	return patch, true
}
