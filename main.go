package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tutorlink/config"
	"tutorlink/cron"
	"tutorlink/database"
	bookingRepoPkg "tutorlink/database/repository/booking"
	messageRepoPkg "tutorlink/database/repository/message"
	profileRepoPkg "tutorlink/database/repository/profile"
	reviewRepoPkg "tutorlink/database/repository/review"
	skillRepoPkg "tutorlink/database/repository/skill"
	"tutorlink/handlers"
	"tutorlink/middleware"
	"tutorlink/routes"
	bookingSvc "tutorlink/services/booking"
	conversationSvc "tutorlink/services/conversation"
	"tutorlink/services/notification"
	profileSvc "tutorlink/services/profile"
	reviewSvc "tutorlink/services/review"
	searchSvc "tutorlink/services/search"
	skillSvc "tutorlink/services/skill"
	"tutorlink/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.InitAnalyticsClient()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	profileRepo := profileRepoPkg.NewMongoProfileRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	messageRepo := messageRepoPkg.NewMongoMessageRepo()
	skillRepo := skillRepoPkg.NewMongoSkillRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Profiles: profileRepo,
	}

	reminderQueue := cron.NewReminderQueue()

	profileService := &profileSvc.DefaultProfileService{
		Repo: profileRepo,
	}

	bookingService := &bookingSvc.DefaultBookingService{
		Repo:      bookingRepo,
		Profiles:  profileRepo,
		Skills:    skillRepo,
		Notifier:  notificationService,
		Reminders: reminderQueue,
	}

	conversationService := &conversationSvc.DefaultConversationService{
		Bookings: bookingRepo,
		Messages: messageRepo,
		Profiles: profileRepo,
		Notifier: notificationService,
		Redis:    utils.GetCacheClient(),
	}

	searchService := &searchSvc.DefaultSearchService{
		Profiles: profileRepo,
		Skills:   skillRepo,
	}

	skillService := &skillSvc.DefaultSkillService{
		Repo:     skillRepo,
		Profiles: profileRepo,
	}

	reviewService := &reviewSvc.DefaultReviewService{
		Repo:     reviewRepo,
		Bookings: bookingRepo,
	}

	// handlers.
	profileHandler := handlers.NewProfileHandler(profileService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	conversationHandler := handlers.NewConversationHandler(conversationService)
	searchHandler := handlers.NewSearchHandler(searchService)
	skillHandler := handlers.NewSkillHandler(skillService)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ProfileRepo: profileRepo,

		// Account endpoints.
		RegisterHandler:      profileHandler.RegisterHandler,
		LoginHandler:         profileHandler.LoginHandler,
		LogoutHandler:        profileHandler.LogoutHandler,
		GetMeHandler:         profileHandler.GetMeHandler,
		GetProfileHandler:    profileHandler.GetProfileHandler,
		UpdateProfileHandler: profileHandler.UpdateProfileHandler,
		UploadAvatarHandler:  profileHandler.UploadAvatarHandler,
		DeleteProfileHandler: profileHandler.DeleteMeHandler,

		// Booking endpoints.
		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		ListBookingsHandler:        bookingHandler.ListBookingsHandler,
		GetBookingHandler:          bookingHandler.GetBookingHandler,
		UpdateBookingStatusHandler: bookingHandler.UpdateBookingStatusHandler,

		// Conversation endpoints.
		ListConversationsHandler: conversationHandler.ListConversationsHandler,
		GetThreadHandler:         conversationHandler.GetThreadHandler,
		SendMessageHandler:       conversationHandler.SendMessageHandler,
		StreamMessagesHandler:    conversationHandler.StreamMessagesHandler,

		// Tutor directory endpoints.
		SearchTutorsHandler: searchHandler.SearchTutorsHandler,

		// Skill endpoints.
		ListCatalogHandler:    skillHandler.ListCatalogHandler,
		ListOfferingsHandler:  skillHandler.ListOfferingsHandler,
		AddOfferingHandler:    skillHandler.AddOfferingHandler,
		RemoveOfferingHandler: skillHandler.RemoveOfferingHandler,

		// Review endpoints.
		CreateReviewHandler: reviewHandler.CreateReviewHandler,
		ListReviewsHandler:  reviewHandler.ListReviewsHandler,

		// Analytics endpoint.
		TrackEventHandler: handlers.TrackEventHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and monitors.
	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor([]*redis.Client{
		utils.GetCacheClient(),
		utils.GetAuthCacheClient(),
		utils.GetAnalyticsClient(),
	}, database.MongoClient)

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
