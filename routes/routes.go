package routes

import (
	"net/http"
	"time"

	"tutorlink/handlers"
	"tutorlink/middleware"
	"tutorlink/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo))
		api.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterProfileRoutes registers profile endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profiles")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo))
		api.GET("/me", hb.GetMeHandler)
		api.PATCH("/me", hb.UpdateProfileHandler)
		api.DELETE("/me", hb.DeleteProfileHandler)
		api.POST("/me/avatar", hb.UploadAvatarHandler)
		api.GET("/id/:id", hb.GetProfileHandler)
		api.GET("/id/:id/reviews", hb.ListReviewsHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo))
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.PATCH("/:id/status", hb.UpdateBookingStatusHandler)
	}
}

// RegisterConversationRoutes registers messaging endpoints.
func RegisterConversationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/conversations")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo))
		api.GET("", hb.ListConversationsHandler)
		api.GET("/:bookingID/messages", hb.GetThreadHandler)
		api.POST("/:bookingID/messages", hb.SendMessageHandler)
		api.GET("/:bookingID/stream", hb.StreamMessagesHandler)
	}
}

// RegisterTutorRoutes registers the public tutor directory.
func RegisterTutorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tutors")
	{
		api.GET("", hb.SearchTutorsHandler)
	}
}

// RegisterSkillRoutes registers the subject catalog and offering endpoints.
func RegisterSkillRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/skills")
	{
		api.GET("", hb.ListCatalogHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo))
		api.GET("/offerings", hb.ListOfferingsHandler)
		api.POST("/offerings", hb.AddOfferingHandler)
		api.DELETE("/offerings/:id", hb.RemoveOfferingHandler)
	}
}

// RegisterReviewRoutes registers review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo))
		api.POST("", hb.CreateReviewHandler)
	}
}

// RegisterAnalyticsRoute registers the fire-and-forget event sink.
func RegisterAnalyticsRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/analytics", hb.TrackEventHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterTutorRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterConversationRoutes(r, hb)
	RegisterSkillRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterAnalyticsRoute(r, hb)
	RegisterHealthRoute(r)
}
