package profile

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"tutorlink/models"
	"tutorlink/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const (
	maxBioLength      = 500
	maxLocationLength = 100
)

// GetProfile returns a profile by ID.
func (s *DefaultProfileService) GetProfile(profileID string) (*models.Profile, error) {
	p, err := s.Repo.GetByID(profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	if p == nil {
		return nil, &NotFoundError{ID: profileID}
	}
	return p, nil
}

// UpdateProfile applies a partial update: only the fields present in the
// request are written. Email, user type and credentials are not editable here.
func (s *DefaultProfileService) UpdateProfile(profileID string, req models.ProfileUpdateRequest) (*models.Profile, error) {
	if len(req.Bio) > maxBioLength {
		return nil, &ValidationError{Field: "bio", Message: fmt.Sprintf("bio cannot exceed %d characters", maxBioLength)}
	}
	if len(req.FirstName) > maxNameLength || len(req.LastName) > maxNameLength {
		return nil, &ValidationError{Field: "name", Message: fmt.Sprintf("names cannot exceed %d characters", maxNameLength)}
	}
	if len(req.Location) > maxLocationLength {
		return nil, &ValidationError{Field: "location", Message: fmt.Sprintf("location cannot exceed %d characters", maxLocationLength)}
	}

	update := bson.M{}
	if strings.TrimSpace(req.FirstName) != "" {
		update["first_name"] = strings.TrimSpace(req.FirstName)
	}
	if strings.TrimSpace(req.LastName) != "" {
		update["last_name"] = strings.TrimSpace(req.LastName)
	}
	if req.Bio != "" {
		update["bio"] = req.Bio
	}
	if req.Location != "" {
		update["location"] = req.Location
	}
	if req.Phone != "" {
		update["phone"] = req.Phone
	}
	if req.AvatarURL != "" {
		update["avatar_url"] = req.AvatarURL
	}
	if req.FCMToken != "" {
		update["fcm_token"] = req.FCMToken
	}
	if len(update) == 0 {
		return s.GetProfile(profileID)
	}
	update["updated_at"] = time.Now()

	if err := s.Repo.UpdateSetDocument(profileID, update); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.GetProfile(profileID)
}

// DeleteProfile removes an account and evicts its cached session so the
// deleted profile cannot keep authenticating from the cache.
func (s *DefaultProfileService) DeleteProfile(profileID string) error {
	if _, err := s.GetProfile(profileID); err != nil {
		return err
	}
	if err := s.Repo.Delete(profileID); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+profileID).Err(); err != nil {
		utils.GetLogger().Warn("DeleteProfile: cache eviction failed", zap.String("profileID", profileID), zap.Error(err))
	}

	utils.TrackEvent(utils.AnalyticsEvent{Event: "profile_deleted", UserID: profileID})
	return nil
}

// UploadAvatar stores an avatar image in Cloudinary and saves its URL on the
// profile. The upload overwrites any previous avatar for the profile.
func (s *DefaultProfileService) UploadAvatar(ctx context.Context, profileID string, file io.Reader) (string, error) {
	logger := utils.GetLogger()

	if _, err := s.GetProfile(profileID); err != nil {
		return "", err
	}

	cld, err := utils.Cloudinary()
	if err != nil {
		logger.Error("UploadAvatar: cloudinary init failed", zap.Error(err))
		return "", fmt.Errorf("avatar upload is unavailable")
	}

	res, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   "tutorlink/avatars",
		PublicID: profileID,
	})
	if err != nil {
		logger.Error("UploadAvatar: upload failed", zap.String("profileID", profileID), zap.Error(err))
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	if err := s.Repo.UpdateSetDocument(profileID, bson.M{"avatar_url": res.SecureURL, "updated_at": time.Now()}); err != nil {
		return "", fmt.Errorf("failed to save avatar url: %w", err)
	}
	return res.SecureURL, nil
}
