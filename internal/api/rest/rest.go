package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/sundevilsync/sds-backend/internal/api/middleware"
	"github.com/sundevilsync/sds-backend/internal/domain"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Authentication (public)
		v1.POST("/auth/register", handler.Register)
		v1.POST("/auth/login", handler.Login)

		// Event and group catalogs (public read access)
		v1.GET("/events", handler.ListEvents)
		v1.GET("/events/:id", handler.GetEvent)
		v1.GET("/groups", handler.ListGroups)
		v1.GET("/groups/:id", handler.GetGroup)

		// Badge index (public read access)
		v1.GET("/badges", handler.ListBadges)
		v1.GET("/badges/:token_id", handler.GetBadge)

		// Ledger gateway status (public read access)
		v1.GET("/ledger/status", handler.LedgerStatus)

		auth := v1.Group("", middleware.Auth(authCfg))
		{
			// Account profile and wallet
			auth.GET("/me", handler.GetProfile)
			auth.POST("/me/wallet", handler.LinkWallet)
			auth.GET("/me/balance", handler.GetBalance)
			auth.GET("/me/enrollments", handler.ListEnrollments)
			auth.GET("/me/memberships", handler.ListMemberships)
			auth.GET("/me/badges", handler.ListMyBadges)
			auth.GET("/me/badges/issued", handler.ListIssuedBadges)

			// Enrollment and membership toggles
			auth.POST("/events/:id/enrollment", handler.ToggleEnrollment)
			auth.DELETE("/events/:id/enrollment", handler.CancelEnrollment)
			auth.POST("/groups/:id/membership", handler.ToggleMembership)

			// Attendance confirmation (role enforced by the engine)
			auth.POST("/attendance", handler.ConfirmAttendance)

			// Balance conversion and claiming
			auth.POST("/conversions", handler.CreateConversion)
			auth.GET("/conversions", handler.ListConversions)
			auth.POST("/claims", handler.ClaimReward)
		}

		admin := v1.Group("/admin",
			middleware.Auth(authCfg),
			middleware.RequireRoles(domain.RoleAdmin))
		{
			admin.POST("/badges", handler.MintBadge)
			admin.POST("/rewards", handler.DistributeReward)
			admin.POST("/rewards/batch", handler.BatchDistributeRewards)
			admin.PUT("/accounts/:id/role", handler.UpdateAccountRole)
		}
	}
}
