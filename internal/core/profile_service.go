package core

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"familysync-backend/internal/db"
	"familysync-backend/internal/models"
	"familysync-backend/internal/validation"
)

// ErrUserNotFound is returned when a user profile does not exist.
var ErrUserNotFound = errors.New("user not found")

// profileService implements ProfileService.
type profileService struct {
	userRepo   db.UserRepository
	familyRepo db.FamilyRepository
	logger     *zap.Logger
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(userRepo db.UserRepository, familyRepo db.FamilyRepository, logger *zap.Logger) ProfileService {
	return &profileService{
		userRepo:   userRepo,
		familyRepo: familyRepo,
		logger:     logger,
	}
}

// InitializeProfile gets or creates the profile for a freshly
// authenticated user. When the profile has no family yet, a family is
// created and the profile stamped with its id and the parent role in one
// transaction, so there is no window where the user exists without a
// family after this call succeeds.
func (s *profileService) InitializeProfile(ctx context.Context, uid, email, displayName string) (*models.User, bool, error) {
	if uid == "" {
		return nil, false, errors.New("uid cannot be empty")
	}

	created := false
	user, err := s.userRepo.GetByID(ctx, uid)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			return nil, false, fmt.Errorf("failed to get user '%s': %w", uid, err)
		}
		user = &models.User{
			ID:    uid,
			Name:  validation.SanitizeString(displayName),
			Email: validation.SanitizeString(email),
			Role:  models.RoleParent,
			Preferences: models.UserPreferences{
				Notifications: true,
			},
		}
		if createErr := s.userRepo.Create(ctx, user); createErr != nil {
			return nil, false, fmt.Errorf("failed to create user '%s': %w", uid, createErr)
		}
		created = true
	}

	if user.FamilyID == "" {
		familyName := "My Family"
		if user.Name != "" {
			familyName = fmt.Sprintf("%s's Family", user.Name)
		}
		family := &models.Family{
			Name:       familyName,
			MemberUIDs: []string{uid},
			Settings: models.FamilySettings{
				Notifications: true,
			},
			CreatedBy: uid,
		}
		familyID, err := s.familyRepo.CreateWithOwner(ctx, family, uid)
		if err != nil {
			return nil, created, fmt.Errorf("failed to bootstrap family for user '%s': %w", uid, err)
		}
		user.FamilyID = familyID
		user.Role = models.RoleParent
		s.logger.Info("bootstrapped family for new user",
			zap.String("userId", uid),
			zap.String("familyId", familyID))
	}

	return user, created, nil
}

// GetByID retrieves a user profile.
func (s *profileService) GetByID(ctx context.Context, uid string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrUserNotFound, uid)
		}
		return nil, fmt.Errorf("failed to get user '%s': %w", uid, err)
	}
	return user, nil
}

// UpdateProfile runs the validated-write protocol for a profile update:
// sanitize, validate, authorize (self-scoped: the caller may only update
// their own profile), persist. The stored familyId is never changed here;
// profile updates cannot move a user between families.
func (s *profileService) UpdateProfile(ctx context.Context, callerUID string, req models.UpdateProfileRequest) error {
	req = validation.SanitizeProfileRequest(req)

	if res := validation.ValidateUserProfile(req); !res.IsValid {
		return &ValidationError{Violations: res.Errors}
	}

	if req.UserID != callerUID {
		return ErrPermissionDenied
	}

	user, err := s.userRepo.GetByID(ctx, callerUID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: '%s'", ErrUserNotFound, callerUID)
		}
		return fmt.Errorf("failed to load user '%s' for update: %w", callerUID, err)
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Phone = req.Phone
	user.Role = req.Role

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("profile update failed",
			zap.String("userId", callerUID),
			zap.Error(err))
		return fmt.Errorf("failed to update user '%s': %w", callerUID, err)
	}
	return nil
}
