package routes

import (
	"github.com/al-mohaimin-farabi/pet-club-backend/controllers/user_controller"
	"github.com/al-mohaimin-farabi/pet-club-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes sets up the user and role management routes. Listing users
// requires an admin record; role changes require a valid token, with the
// finer-grained checks handled inside the controller.
func SetupUserRoutes(router *gin.Engine, deps Deps) {
	ctl := user_controller.New(deps.Store, deps.SuperAdminEmail)

	users := router.Group("/users")
	{
		users.GET("", middleware.AdminAuthMiddleware(deps.Verifier, deps.Store), ctl.GetUsers)

		authed := users.Group("")
		authed.Use(middleware.AuthMiddleware(deps.Verifier))
		{
			authed.GET("/:email/roles", ctl.GetUserRoles)

			writes := authed.Group("")
			writes.Use(middleware.ActivityLoggingMiddleware(deps.Store, "user"))
			{
				writes.POST("", ctl.CreateUser)
				writes.PUT("", ctl.UpsertUser)
				writes.PUT("/tempadmin", ctl.AssignTempAdmin)
				writes.PUT("/admin", ctl.AssignAdmin)
			}
		}
	}
}
