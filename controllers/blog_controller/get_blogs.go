package blog_controller

import (
	"log"
	"net/http"

	"github.com/al-mohaimin-farabi/pet-club-backend/config"
	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"github.com/gin-gonic/gin"
)

func (ctl *Controller) GetBlogs(c *gin.Context) {
	log.Println("[blogs] list")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	blogs, err := ctl.loadBlogs(ctx)
	if err != nil {
		log.Printf("[blogs] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Message("Database error"))
		return
	}

	c.JSON(http.StatusOK, blogs)
}
