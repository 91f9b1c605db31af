package profile

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"tutorlink/models"
	"tutorlink/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenLifetime = 24 * time.Hour
	maxNameLength = 50
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// verifyPasswordComplexity checks that the password contains at least one
// lowercase letter, one uppercase letter and one digit.
func verifyPasswordComplexity(pw string) error {
	var (
		hasMinLen = len(pw) >= 8
		hasUpper  = regexp.MustCompile(`[A-Z]`).MatchString(pw)
		hasLower  = regexp.MustCompile(`[a-z]`).MatchString(pw)
		hasNumber = regexp.MustCompile(`[0-9]`).MatchString(pw)
	)
	if !hasMinLen {
		return &ValidationError{Field: "password", Message: "password must be at least 8 characters long"}
	}
	if !hasUpper {
		return &ValidationError{Field: "password", Message: "password must include at least one uppercase letter"}
	}
	if !hasLower {
		return &ValidationError{Field: "password", Message: "password must include at least one lowercase letter"}
	}
	if !hasNumber {
		return &ValidationError{Field: "password", Message: "password must include at least one number"}
	}
	return nil
}

func validateRegistration(req RegistrationRequest) error {
	if req.UserType != models.UserTypeLearner && req.UserType != models.UserTypeTutor {
		return &ValidationError{Field: "user_type", Message: "user type must be learner or tutor"}
	}
	if strings.TrimSpace(req.FirstName) == "" {
		return &ValidationError{Field: "first_name", Message: "first name is required"}
	}
	if len(req.FirstName) > maxNameLength {
		return &ValidationError{Field: "first_name", Message: fmt.Sprintf("first name cannot exceed %d characters", maxNameLength)}
	}
	if strings.TrimSpace(req.LastName) == "" {
		return &ValidationError{Field: "last_name", Message: "last name is required"}
	}
	if len(req.LastName) > maxNameLength {
		return &ValidationError{Field: "last_name", Message: fmt.Sprintf("last name cannot exceed %d characters", maxNameLength)}
	}
	if !emailPattern.MatchString(req.Email) {
		return &ValidationError{Field: "email", Message: "a valid email address is required"}
	}
	return verifyPasswordComplexity(req.Password)
}

// Register creates a new account, issues a token and stores its hash for
// session validation.
func (s *DefaultProfileService) Register(req RegistrationRequest) (*AuthResponse, error) {
	logger := utils.GetLogger()

	if err := validateRegistration(req); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.Repo.GetByEmailWithProjection(email, bson.M{"id": 1})
	if err != nil {
		logger.Error("Register: existing-account check failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, &ValidationError{Field: "email", Message: "an account with this email already exists"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Register: password hashing failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	p := &models.Profile{
		ID:           uuid.New().String(),
		UserType:     req.UserType,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        email,
		PasswordHash: string(hashed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	token, err := utils.GenerateToken(p.ID, p.Email, tokenLifetime)
	if err != nil {
		logger.Error("Register: token generation failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	p.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(p); err != nil {
		logger.Error("Register: persist failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	s.cacheTokenHash(p.ID, p.TokenHash)
	utils.TrackEvent(utils.AnalyticsEvent{Event: "profile_registered", UserID: p.ID, Properties: map[string]any{
		"user_type": p.UserType,
	}})

	logger.Info("profile registered", zap.String("profileID", p.ID), zap.String("userType", p.UserType))
	return authResponse(p, token), nil
}

// Authenticate verifies credentials, rotates the session token and returns it.
func (s *DefaultProfileService) Authenticate(email, password string) (*AuthResponse, error) {
	logger := utils.GetLogger()
	email = strings.ToLower(strings.TrimSpace(email))

	p, err := s.Repo.GetByEmail(email)
	if err != nil {
		logger.Error("Authenticate: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("sign-in failed, please try again")
	}
	if p == nil {
		return nil, &AuthError{Message: "invalid email or password"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return nil, &AuthError{Message: "invalid email or password"}
	}

	token, err := utils.GenerateToken(p.ID, p.Email, tokenLifetime)
	if err != nil {
		logger.Error("Authenticate: token generation failed", zap.Error(err))
		return nil, fmt.Errorf("sign-in failed, please try again")
	}
	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateSetDocument(p.ID, bson.M{"token_hash": tokenHash, "updated_at": time.Now()}); err != nil {
		logger.Error("Authenticate: token hash store failed", zap.Error(err))
		return nil, fmt.Errorf("sign-in failed, please try again")
	}

	s.cacheTokenHash(p.ID, tokenHash)
	utils.TrackEvent(utils.AnalyticsEvent{Event: "profile_signed_in", UserID: p.ID})

	return authResponse(p, token), nil
}

// RevokeToken invalidates the current session token for a profile.
func (s *DefaultProfileService) RevokeToken(profileID string) error {
	if err := s.Repo.UpdateSetDocument(profileID, bson.M{"token_hash": "", "updated_at": time.Now()}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+profileID).Err(); err != nil {
		utils.GetLogger().Warn("RevokeToken: cache eviction failed", zap.String("profileID", profileID), zap.Error(err))
	}
	return nil
}

// cacheTokenHash mirrors the stored token hash into the auth cache so the
// auth middleware can validate sessions without a database round trip.
func (s *DefaultProfileService) cacheTokenHash(profileID, tokenHash string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := utils.GetAuthCacheClient().Set(ctx, utils.AuthCachePrefix+profileID, tokenHash, tokenLifetime).Err(); err != nil {
		utils.GetLogger().Warn("auth cache write failed", zap.String("profileID", profileID), zap.Error(err))
	}
}

func authResponse(p *models.Profile, token string) *AuthResponse {
	return &AuthResponse{
		ID:        p.ID,
		Token:     token,
		UserType:  p.UserType,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		AvatarURL: p.AvatarURL,
	}
}
