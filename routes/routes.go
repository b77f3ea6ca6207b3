package routes

import (
	"github.com/al-mohaimin-farabi/pet-club-backend/services"
	"github.com/al-mohaimin-farabi/pet-club-backend/store"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Deps carries the shared handles every route group wires into its
// controllers and middleware. Redis may be nil, in which case rate
// limiting is disabled.
type Deps struct {
	Store           *store.Store
	Verifier        services.TokenVerifier
	Redis           *redis.Client
	SuperAdminEmail string
}

// Setup registers every route on the engine.
func Setup(router *gin.Engine, deps Deps) {
	SetupProductRoutes(router, deps)
	SetupBlogRoutes(router, deps)
	SetupOrderRoutes(router, deps)
	SetupUserRoutes(router, deps)
	SetupActivityLogRoutes(router, deps)
}
