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

// familyService implements FamilyService.
type familyService struct {
	familyRepo db.FamilyRepository
	membership MembershipService
	logger     *zap.Logger
}

// NewFamilyService creates a new FamilyService instance.
func NewFamilyService(familyRepo db.FamilyRepository, membership MembershipService, logger *zap.Logger) FamilyService {
	return &familyService{
		familyRepo: familyRepo,
		membership: membership,
		logger:     logger,
	}
}

// GetFamily returns the family document to one of its members. Outsiders
// get a permission error regardless of whether the family exists.
func (s *familyService) GetFamily(ctx context.Context, callerUID, familyID string) (*models.Family, error) {
	if !s.membership.IsMember(ctx, callerUID, familyID) {
		return nil, ErrPermissionDenied
	}
	family, err := s.familyRepo.GetByID(ctx, familyID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get family '%s': %w", familyID, err)
	}
	return family, nil
}

// UpdateSettings updates family-wide settings for a member. The cached
// member list is invalidated in case a future settings shape touches it.
func (s *familyService) UpdateSettings(ctx context.Context, callerUID, familyID string, req models.UpdateFamilySettingsRequest) error {
	if familyID == "" {
		return &ValidationError{Violations: []string{"Family ID is required"}}
	}
	if !s.membership.IsMember(ctx, callerUID, familyID) {
		return ErrPermissionDenied
	}

	if req.Supermarkets != nil {
		cleaned := make([]string, len(*req.Supermarkets))
		for i, m := range *req.Supermarkets {
			cleaned[i] = validation.SanitizeString(m)
		}
		req.Supermarkets = &cleaned
	}
	if req.Settings != nil {
		settings := models.FamilySettings{
			Language:      validation.SanitizeString(req.Settings.Language),
			Timezone:      validation.SanitizeString(req.Settings.Timezone),
			Notifications: req.Settings.Notifications,
		}
		req.Settings = &settings
	}

	if err := s.familyRepo.UpdateSettings(ctx, familyID, req.Settings, req.Supermarkets); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Error("family settings update failed",
			zap.String("familyId", familyID),
			zap.Error(err))
		return fmt.Errorf("failed to update settings for family '%s': %w", familyID, err)
	}
	s.membership.Invalidate(ctx, familyID)
	return nil
}
