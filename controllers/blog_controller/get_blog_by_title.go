package blog_controller

import (
	"log"
	"net/http"

	"github.com/al-mohaimin-farabi/pet-club-backend/config"
	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"github.com/gin-gonic/gin"
)

// GetBlogByTitle scans the list for an exact blogTitle match, which is how
// the storefront links to posts. No match answers 200 with a null body.
func (ctl *Controller) GetBlogByTitle(c *gin.Context) {
	title := c.Param("blogTitle")
	log.Printf("[blogs] get by title %q", title)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	blogs, err := ctl.loadBlogs(ctx)
	if err != nil {
		log.Printf("[blogs] get by title failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Message("Database error"))
		return
	}

	for _, blog := range blogs {
		if blog.BlogTitle == title {
			c.JSON(http.StatusOK, blog)
			return
		}
	}

	c.JSON(http.StatusOK, nil)
}
