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

// noteService implements NoteService.
type noteService struct {
	noteRepo   db.NoteRepository
	membership MembershipService
	logger     *zap.Logger
}

// NewNoteService creates a new NoteService instance.
func NewNoteService(noteRepo db.NoteRepository, membership MembershipService, logger *zap.Logger) NoteService {
	return &noteService{
		noteRepo:   noteRepo,
		membership: membership,
		logger:     logger,
	}
}

// CreateNote pins a note for the caller's family.
func (s *noteService) CreateNote(ctx context.Context, callerUID string, req models.CreateNoteRequest) (string, error) {
	req.Text = validation.SanitizeString(req.Text)
	req.FamilyID = validation.SanitizeString(req.FamilyID)

	var errs []string
	if req.Text == "" {
		errs = append(errs, "Note text is required")
	}
	if req.FamilyID == "" {
		errs = append(errs, "Family ID is required")
	}
	if len(errs) > 0 {
		return "", &ValidationError{Violations: errs}
	}

	if !s.membership.IsMember(ctx, callerUID, req.FamilyID) {
		return "", ErrPermissionDenied
	}

	note := &models.FamilyNote{
		FamilyID: req.FamilyID,
		Text:     req.Text,
		Author:   callerUID,
	}
	noteID, err := s.noteRepo.Create(ctx, note)
	if err != nil {
		s.logger.Error("note creation failed",
			zap.String("familyId", req.FamilyID),
			zap.Error(err))
		return "", fmt.Errorf("failed to create note in family '%s': %w", req.FamilyID, err)
	}
	return noteID, nil
}

// ListNotes returns the family's notes, newest first.
func (s *noteService) ListNotes(ctx context.Context, callerUID, familyID string) ([]*models.FamilyNote, error) {
	if !s.membership.IsMember(ctx, callerUID, familyID) {
		return nil, ErrPermissionDenied
	}
	notes, err := s.noteRepo.ListByFamily(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes for family '%s': %w", familyID, err)
	}
	return notes, nil
}

// DismissNote hides a note for the caller only. Dismissing the same note
// twice leaves the dismissal list unchanged.
func (s *noteService) DismissNote(ctx context.Context, callerUID, familyID, noteID string) (*models.FamilyNote, error) {
	if !s.membership.IsMember(ctx, callerUID, familyID) {
		return nil, ErrPermissionDenied
	}
	note, err := s.noteRepo.Dismiss(ctx, familyID, noteID, callerUID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Error("note dismissal failed",
			zap.String("familyId", familyID),
			zap.String("noteId", noteID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to dismiss note '%s': %w", noteID, err)
	}
	return note, nil
}
