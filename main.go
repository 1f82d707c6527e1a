// File: roombook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"roombook/config"
	"roombook/cron"
	"roombook/database"
	bookingRepo "roombook/database/repository/booking"
	"roombook/handlers"
	"roombook/middleware"
	"roombook/routes"
	"roombook/services/reservation"
	"roombook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()
	utils.InitCache()
	cache := utils.GetCacheClient()

	// Repository and services.
	repo := bookingRepo.NewMongoBookingRepo()

	svc := &reservation.DefaultReservationService{Repo: repo}
	hub := &reservation.SyncHub{
		Repo: repo,
		OnChange: func(roomID, date string) {
			utils.InvalidateDayListing(context.Background(), cache, roomID, date)
		},
	}

	if config.AppConfig.PurgeEnabled {
		cron.InitPurgeWorker(repo)
	}
	utils.StartHealthMonitor(cache, database.MongoClient)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
		MaxAge:          12 * time.Hour,
	}))

	h := handlers.NewReservationHandler(svc, cache)
	wsHandler := &handlers.SyncHandler{Hub: hub}
	routes.RegisterReservationRoutes(router, h, wsHandler)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("forced shutdown: %v", err)
	}
}
