package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/handlers"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/middleware"
)

// RegisterAuthRoutes registers staff account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.LoginHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.MeHandler)
		api.DELETE("/revoke", hb.RevokeTokenHandler)

		admin := api.Group("")
		admin.Use(middleware.AdminOnly(hb.UserRepo))
		admin.POST("/register", hb.RegisterUserHandler)
		admin.GET("/users", hb.ListUsersHandler)
	}
}

// RegisterGuestRoutes registers guest directory endpoints.
func RegisterGuestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/guests")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateGuestHandler)
		api.GET("", hb.ListGuestsHandler)
		api.GET("/:id", hb.GetGuestHandler)
		api.PUT("/:id", hb.UpdateGuestHandler)
		api.DELETE("/:id", hb.DeleteGuestHandler)
	}
}

// RegisterStayRoutes registers stay and room inventory endpoints.
func RegisterStayRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	stays := r.Group("/api/stays")
	{
		stays.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		stays.POST("", hb.CreateStayHandler)
		stays.GET("", hb.ListStaysHandler)
		stays.GET("/:id", hb.GetStayHandler)
		stays.PUT("/:id", hb.UpdateStayHandler)
		stays.DELETE("/:id", hb.DeleteStayHandler)
	}

	rooms := r.Group("/api/rooms")
	{
		rooms.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		rooms.POST("", hb.CreateRoomHandler)
		rooms.GET("", hb.ListRoomsHandler)
		rooms.GET("/:id", hb.GetRoomHandler)
		rooms.PUT("/:id", hb.UpdateRoomHandler)
		rooms.DELETE("/:id", hb.DeleteRoomHandler)
		rooms.POST("/:id/photo", hb.UploadRoomPhotoHandler)
	}
}

// RegisterReservationRoutes registers booking endpoints.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reservations")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateReservationHandler)
		api.GET("", hb.ListReservationsHandler)
		api.GET("/calendar", hb.ReservationCalendarHandler)
		api.GET("/:id", hb.GetReservationHandler)
		api.PUT("/:id", hb.UpdateReservationHandler)
		api.PUT("/:id/status", hb.SetReservationStatusHandler)
		api.POST("/:id/cancel", hb.CancelReservationHandler)
		api.DELETE("/:id", hb.DeleteReservationHandler)
	}
}

// RegisterHousekeepingRoutes registers maid and cleaning schedule endpoints.
func RegisterHousekeepingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/housekeeping")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/maids", hb.CreateMaidHandler)
		api.GET("/maids", hb.ListMaidsHandler)
		api.GET("/maids/:id", hb.GetMaidHandler)
		api.PUT("/maids/:id", hb.UpdateMaidHandler)

		api.POST("/schedules", hb.CreateScheduleHandler)
		api.GET("/schedules", hb.ListSchedulesHandler)
		api.POST("/schedules/:id/complete", hb.CompleteScheduleHandler)
		api.DELETE("/schedules/:id", hb.DeleteScheduleHandler)
		api.POST("/schedules/generate", hb.GenerateCleaningsHandler)
	}
}

// RegisterMaintenanceRoutes registers maintenance ticket endpoints.
func RegisterMaintenanceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/maintenance")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/tasks", hb.CreateMaintenanceTaskHandler)
		api.GET("/tasks", hb.ListMaintenanceTasksHandler)
		api.GET("/tasks/:id", hb.GetMaintenanceTaskHandler)
		api.PUT("/tasks/:id", hb.UpdateMaintenanceTaskHandler)
		api.PUT("/tasks/:id/status", hb.SetMaintenanceStatusHandler)
		api.DELETE("/tasks/:id", hb.DeleteMaintenanceTaskHandler)

		api.GET("/occurrences", hb.ListOccurrencesHandler)
		api.POST("/occurrences/:id/complete", hb.CompleteOccurrenceHandler)
	}
}

// RegisterInventoryRoutes registers stock endpoints.
func RegisterInventoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/inventory")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/items", hb.CreateInventoryItemHandler)
		api.GET("/items", hb.ListInventoryItemsHandler)
		api.GET("/items/low-stock", hb.ListLowStockHandler)
		api.GET("/items/:id", hb.GetInventoryItemHandler)
		api.PUT("/items/:id", hb.UpdateInventoryItemHandler)
		api.DELETE("/items/:id", hb.DeleteInventoryItemHandler)
		api.GET("/items/:id/movements", hb.ListInventoryMovementsHandler)
		api.POST("/movements", hb.MoveInventoryHandler)
	}
}

// RegisterReportRoutes registers the dashboard and period reports.
func RegisterReportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reports")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/dashboard", hb.DashboardHandler)
		api.GET("/occupancy", hb.OccupancyReportHandler)
		api.GET("/performance", hb.PerformanceReportHandler)
		api.GET("/payroll", hb.PayrollReportHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterGuestRoutes(r, hb)
	RegisterStayRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterHousekeepingRoutes(r, hb)
	RegisterMaintenanceRoutes(r, hb)
	RegisterInventoryRoutes(r, hb)
	RegisterReportRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
