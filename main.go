package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelhub/config"
	"hotelhub/database"
	bookingRepoPkg "hotelhub/database/repository/booking"
	reviewRepoPkg "hotelhub/database/repository/review"
	roomRepoPkg "hotelhub/database/repository/room"
	"hotelhub/handlers"
	"hotelhub/middleware"
	"hotelhub/routes"
	"hotelhub/services/booking"
	"hotelhub/services/review"
	"hotelhub/services/room"
	"hotelhub/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	roomRepo := roomRepoPkg.NewMongoRoomRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// services.
	roomService := &room.DefaultRoomService{
		Rooms: roomRepo,
		Cache: utils.GetCacheClient(),
	}
	bookingService := &booking.DefaultBookingService{
		Bookings: bookingRepo,
		Rooms:    roomRepo,
	}
	reviewService := &review.DefaultReviewService{
		Reviews: reviewRepo,
		Rooms:   roomRepo,
	}

	roomHandler := handlers.NewRoomHandler(roomService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		IssueToken: handlers.IssueTokenHandler,
		Logout:     handlers.LogoutHandler,

		ListRooms:   roomHandler.ListRoomsHandler,
		RoomsCount:  roomHandler.RoomsCountHandler,
		RoomDetails: roomHandler.RoomDetailsHandler,

		BookRoom:      bookingHandler.BookRoomHandler,
		CancelBooking: bookingHandler.CancelBookingHandler,
		BookedRooms:   bookingHandler.BookedRoomsHandler,
		UpdateBooking: bookingHandler.UpdateBookingHandler,

		SubmitReview: reviewHandler.SubmitReviewHandler,
		ListReviews:  reviewHandler.ListReviewsHandler,
		RoomReviews:  reviewHandler.RoomReviewsHandler,
		ReviewsCount: reviewHandler.ReviewsCountHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
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

	utils.CloseCache()
	database.CloseDB()

	logger.Sugar().Info("main: server stopped gracefully")
}
