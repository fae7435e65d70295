// File: brewdesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brewdesk/config"
	"brewdesk/cron"
	"brewdesk/database"
	businessRepoPkg "brewdesk/database/repository/business"
	deskRepoPkg "brewdesk/database/repository/desk"
	hoursRepoPkg "brewdesk/database/repository/hours"
	reservationRepoPkg "brewdesk/database/repository/reservation"
	userRepoPkg "brewdesk/database/repository/user"
	"brewdesk/handlers"
	"brewdesk/middleware"
	"brewdesk/routes"
	"brewdesk/services/booking"
	"brewdesk/services/business"
	"brewdesk/services/user"
	"brewdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	cron.InitReminderWorker()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	businessRepo := businessRepoPkg.NewMongoBusinessRepo()
	deskRepo := deskRepoPkg.NewMongoDeskRepo()
	hoursRepo := hoursRepoPkg.NewMongoHoursRepo()
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}

	businessService := &business.DefaultBusinessService{
		Repo:      businessRepo,
		DeskRepo:  deskRepo,
		HoursRepo: hoursRepo,
	}

	reminderQueue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderQueue.Close()

	bookingService := &booking.DefaultBookingService{
		ReservationRepo: reservationRepo,
		DeskRepo:        deskRepo,
		BusinessRepo:    businessRepo,
		HoursRepo:       hoursRepo,
		Cache:           utils.GetCacheClient(),
		ReminderQueue:   reminderQueue,
	}

	userHandler := handlers.NewUserHandler(userService, bookingService)
	businessHandler := handlers.NewBusinessHandler(businessService, bookingService)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserService: userService,

		// User endpoints.
		SyncUserHandler:          userHandler.SyncUserHandler,
		GetMeHandler:             userHandler.GetMeHandler,
		GetMyReservationsHandler: userHandler.GetMyReservationsHandler,

		// Business endpoints.
		ListBusinessesHandler:          businessHandler.ListBusinessesHandler,
		GetBusinessHandler:             businessHandler.GetBusinessHandler,
		GetMyBusinessHandler:           businessHandler.GetMyBusinessHandler,
		CreateBusinessHandler:          businessHandler.CreateBusinessHandler,
		UpdateBusinessHandler:          businessHandler.UpdateBusinessHandler,
		GetBusinessReservationsHandler: businessHandler.GetBusinessReservationsHandler,

		// Desk endpoints.
		ListDesksHandler:  businessHandler.ListDesksHandler,
		CreateDeskHandler: businessHandler.CreateDeskHandler,
		UpdateDeskHandler: businessHandler.UpdateDeskHandler,
		DeleteDeskHandler: businessHandler.DeleteDeskHandler,

		// Hours endpoints.
		GetHoursHandler:          businessHandler.GetHoursHandler,
		SetHoursHandler:          businessHandler.SetHoursHandler,
		ClearHoursHandler:        businessHandler.ClearHoursHandler,
		GetAvailableDatesHandler: businessHandler.GetAvailableDatesHandler,

		// Booking endpoints.
		GetAvailabilityHandler: bookingHandler.GetAvailabilityHandler,
		QuoteBookingHandler:    bookingHandler.QuoteBookingHandler,
		CreateBookingHandler:   bookingHandler.CreateBookingHandler,
		GetBookingHandler:      bookingHandler.GetBookingHandler,
		CancelBookingHandler:   bookingHandler.CancelBookingHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
