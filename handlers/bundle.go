package handlers

import (
	profileRepoPkg "tutorlink/database/repository/profile"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	ProfileRepo profileRepoPkg.ProfileRepository

	// Account endpoints
	RegisterHandler      gin.HandlerFunc
	LoginHandler         gin.HandlerFunc
	LogoutHandler        gin.HandlerFunc
	GetMeHandler         gin.HandlerFunc
	GetProfileHandler    gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc
	UploadAvatarHandler  gin.HandlerFunc
	DeleteProfileHandler gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler       gin.HandlerFunc
	ListBookingsHandler        gin.HandlerFunc
	GetBookingHandler          gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc

	// Conversation endpoints
	ListConversationsHandler gin.HandlerFunc
	GetThreadHandler         gin.HandlerFunc
	SendMessageHandler       gin.HandlerFunc
	StreamMessagesHandler    gin.HandlerFunc

	// Tutor directory endpoints
	SearchTutorsHandler gin.HandlerFunc

	// Skill endpoints
	ListCatalogHandler    gin.HandlerFunc
	ListOfferingsHandler  gin.HandlerFunc
	AddOfferingHandler    gin.HandlerFunc
	RemoveOfferingHandler gin.HandlerFunc

	// Review endpoints
	CreateReviewHandler gin.HandlerFunc
	ListReviewsHandler  gin.HandlerFunc

	// Analytics endpoint
	TrackEventHandler gin.HandlerFunc
}
