package routes

import (
	"github.com/al-mohaimin-farabi/pet-club-backend/controllers/blog_controller"
	"github.com/gin-gonic/gin"
)

// SetupBlogRoutes sets up the read-only blog routes.
func SetupBlogRoutes(router *gin.Engine, deps Deps) {
	ctl := blog_controller.New(deps.Store)

	blogs := router.Group("/blogs")
	{
		blogs.GET("", ctl.GetBlogs)
		blogs.GET("/:blogTitle", ctl.GetBlogByTitle)
	}
}
