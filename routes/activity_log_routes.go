package routes

import (
	"github.com/al-mohaimin-farabi/pet-club-backend/controllers/activity_log_controller"
	"github.com/al-mohaimin-farabi/pet-club-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupActivityLogRoutes sets up the admin-only audit trail route.
func SetupActivityLogRoutes(router *gin.Engine, deps Deps) {
	ctl := activity_log_controller.New(deps.Store)

	router.GET("/activitylogs",
		middleware.AdminAuthMiddleware(deps.Verifier, deps.Store),
		ctl.GetActivityLogs)
}
