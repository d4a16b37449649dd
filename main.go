package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/config"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/cron"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/database"
	guestRepoPkg "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/guest"
	housekeepingRepoPkg "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/housekeeping"
	inventoryRepoPkg "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/inventory"
	maintenanceRepoPkg "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/maintenance"
	reservationRepoPkg "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/reservation"
	stayRepoPkg "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/stay"
	userRepoPkg "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/user"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/handlers"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/middleware"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/routes"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/guest"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/housekeeping"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/inventory"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/maintenance"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/notification"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/report"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/reservation"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/stay"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/storage"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/user"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	// Photo storage is optional; the server runs without it.
	var storageService storage.StorageService
	if cld, err := utils.Cloudinary(); err != nil {
		logger.Sugar().Warnf("main: photo storage disabled: %v", err)
	} else {
		storageService = storage.NewStorageService(cld)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewGormUserRepo()
	guestRepo := guestRepoPkg.NewGormGuestRepo()
	stayRepo := stayRepoPkg.NewGormStayRepo()
	reservationRepo := reservationRepoPkg.NewGormReservationRepo()
	housekeepingRepo := housekeepingRepoPkg.NewGormHousekeepingRepo()
	maintenanceRepo := maintenanceRepoPkg.NewGormMaintenanceRepo()
	inventoryRepo := inventoryRepoPkg.NewGormInventoryRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	guestService := &guest.DefaultGuestService{
		Repo: guestRepo,
	}
	stayService := &stay.DefaultStayService{
		Repo:    stayRepo,
		Storage: storageService,
	}
	reservationService := &reservation.DefaultReservationService{
		Repo:     reservationRepo,
		StayRepo: stayRepo,
	}

	notificationService, err := notification.NewDefaultNotificationService(housekeepingRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	housekeepingService := &housekeeping.DefaultHousekeepingService{
		Repo:         housekeepingRepo,
		Reservations: reservationRepo,
		Notifier:     notificationService,
	}
	maintenanceService := &maintenance.DefaultMaintenanceService{
		Repo: maintenanceRepo,
	}
	inventoryService := &inventory.DefaultInventoryService{
		Repo: inventoryRepo,
	}
	reportService := &report.DefaultReportService{
		Stays:        stayRepo,
		Reservations: reservationRepo,
		Housekeeping: housekeepingRepo,
		Maintenance:  maintenanceRepo,
		Inventory:    inventoryRepo,
		Cache:        utils.GetCacheClient(),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		UserService:         userService,
		GuestService:        guestService,
		StayService:         stayService,
		ReservationService:  reservationService,
		HousekeepingService: housekeepingService,
		MaintenanceService:  maintenanceService,
		InventoryService:    inventoryService,
		ReportService:       reportService,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the background worker for the nightly jobs.
	cron.InitWorker(cron.Deps{
		Reservations: reservationRepo,
		Housekeeping: housekeepingService,
		Maintenance:  maintenanceService,
	})

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
