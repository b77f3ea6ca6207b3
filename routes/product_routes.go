package routes

import (
	"time"

	"github.com/al-mohaimin-farabi/pet-club-backend/controllers/product_controller"
	"github.com/al-mohaimin-farabi/pet-club-backend/middleware"
	"github.com/al-mohaimin-farabi/pet-club-backend/store"
	"github.com/gin-gonic/gin"
)

// SetupProductRoutes sets up the pet food and pet accessory/toy routes. Both
// catalogs share one controller parameterized by collection; only the path
// prefix and log label differ.
func SetupProductRoutes(router *gin.Engine, deps Deps) {
	catalogs := []struct {
		prefix     string
		collection string
		label      string
	}{
		{"/petfood", store.ColPetFood, "pet food"},
		{"/petaccAndToy", store.ColPetAccAndToy, "pet accessory or toy"},
	}

	for _, cat := range catalogs {
		ctl := product_controller.New(deps.Store, cat.collection, cat.label, deps.SuperAdminEmail)

		group := router.Group(cat.prefix)
		{
			// Reads are public
			group.GET("", ctl.GetProducts)
			group.GET("/:id", ctl.GetProductByID)

			// Writes are rate limited and audit logged
			writes := group.Group("")
			writes.Use(middleware.RateLimiter(deps.Redis, 100, time.Minute))
			writes.Use(middleware.ActivityLoggingMiddleware(deps.Store, "product"))
			{
				writes.POST("", ctl.CreateProduct)
				writes.PUT("/:id", ctl.UpdateProduct)
				writes.PATCH("/:id", ctl.PatchProduct)
				writes.DELETE("/:id", ctl.DeleteProduct)
			}
		}
	}
}
