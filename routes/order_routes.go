package routes

import (
	"github.com/al-mohaimin-farabi/pet-club-backend/controllers/order_controller"
	"github.com/gin-gonic/gin"
)

// SetupOrderRoutes sets up the order routes. These are open endpoints; the
// storefront checkout posts orders before the buyer ever signs in.
func SetupOrderRoutes(router *gin.Engine, deps Deps) {
	ctl := order_controller.New(deps.Store)

	orders := router.Group("/orders")
	{
		orders.GET("", ctl.GetOrders)
		orders.GET("/:email", ctl.GetOrdersByEmail)
		orders.POST("", ctl.CreateOrder)
		orders.DELETE("/:id", ctl.DeleteOrder)
	}
}
