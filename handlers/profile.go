package handlers

import (
	"net/http"

	"tutorlink/middleware"
	"tutorlink/models"
	profileSvc "tutorlink/services/profile"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler serves registration, sign-in and profile endpoints.
type ProfileHandler struct {
	Service profileSvc.ProfileService
}

func NewProfileHandler(svc profileSvc.ProfileService) *ProfileHandler {
	return &ProfileHandler{Service: svc}
}

// RegisterHandler handles account registration.
func (h *ProfileHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var req profileSvc.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Register(req)
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles sign-in and returns a fresh session token.
func (h *ProfileHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler revokes the caller's session token.
func (h *ProfileHandler) LogoutHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.Service.RevokeToken(middleware.ProfileID(c)); err != nil {
		writeServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// GetMeHandler returns the caller's own profile.
func (h *ProfileHandler) GetMeHandler(c *gin.Context) {
	logger := getLogger(c)

	p, err := h.Service.GetProfile(middleware.ProfileID(c))
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetProfileHandler returns a profile by ID.
func (h *ProfileHandler) GetProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	p, err := h.Service.GetProfile(c.Param("id"))
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProfileHandler applies a partial update to the caller's profile.
func (h *ProfileHandler) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid profile update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	p, err := h.Service.UpdateProfile(middleware.ProfileID(c), req)
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteMeHandler removes the caller's account.
func (h *ProfileHandler) DeleteMeHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.Service.DeleteProfile(middleware.ProfileID(c)); err != nil {
		writeServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

// UploadAvatarHandler stores a new avatar image for the caller.
func (h *ProfileHandler) UploadAvatarHandler(c *gin.Context) {
	logger := getLogger(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A file upload is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("UploadAvatar: cannot open upload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read the uploaded file"})
		return
	}
	defer file.Close()

	url, err := h.Service.UploadAvatar(c.Request.Context(), middleware.ProfileID(c), file)
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
