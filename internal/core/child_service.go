package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"familysync-backend/internal/db"
	"familysync-backend/internal/models"
	"familysync-backend/internal/validation"
)

// childService implements ChildService.
type childService struct {
	childRepo  db.ChildRepository
	membership MembershipService
	logger     *zap.Logger
}

// NewChildService creates a new ChildService instance.
func NewChildService(childRepo db.ChildRepository, membership MembershipService, logger *zap.Logger) ChildService {
	return &childService{
		childRepo:  childRepo,
		membership: membership,
		logger:     logger,
	}
}

// CreateChild runs the validated-write protocol: sanitize, validate,
// check family membership, persist with the caller stamped as creator.
func (s *childService) CreateChild(ctx context.Context, callerUID string, req models.CreateChildRequest) (string, error) {
	req = validation.SanitizeChildRequest(req)

	if res := validation.ValidateChild(req); !res.IsValid {
		return "", &ValidationError{Violations: res.Errors}
	}

	if !s.membership.IsMember(ctx, callerUID, req.FamilyID) {
		return "", ErrPermissionDenied
	}

	child := &models.Child{
		Name:              req.Name,
		FamilyID:          req.FamilyID,
		MedicalConditions: req.MedicalConditions,
		EmergencyContacts: req.EmergencyContacts,
		CreatedBy:         callerUID,
	}
	if req.BirthDate != "" {
		// Already validated as parseable.
		if birth, ok := validation.ParseDate(req.BirthDate); ok {
			child.BirthDate = &birth
		}
	}

	childID, err := s.childRepo.Create(ctx, child)
	if err != nil {
		s.logger.Error("child creation failed",
			zap.String("familyId", req.FamilyID),
			zap.Error(err))
		return "", fmt.Errorf("failed to create child in family '%s': %w", req.FamilyID, err)
	}
	return childID, nil
}
