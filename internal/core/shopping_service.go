package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"familysync-backend/internal/db"
	"familysync-backend/internal/models"
	"familysync-backend/internal/validation"
)

// shoppingService implements ShoppingService.
type shoppingService struct {
	shoppingRepo db.ShoppingRepository
	membership   MembershipService
	notifier     NotificationDispatcher
	logger       *zap.Logger
}

// NewShoppingService creates a new ShoppingService instance.
func NewShoppingService(shoppingRepo db.ShoppingRepository, membership MembershipService, notifier NotificationDispatcher, logger *zap.Logger) ShoppingService {
	return &shoppingService{
		shoppingRepo: shoppingRepo,
		membership:   membership,
		notifier:     notifier,
		logger:       logger,
	}
}

// CreateItem runs the validated-write protocol for a new shopping item.
// Items live inside the list document, so the id is generated here rather
// than by Firestore.
func (s *shoppingService) CreateItem(ctx context.Context, callerUID string, req models.CreateShoppingItemRequest) (string, error) {
	req = validation.SanitizeShoppingItemRequest(req)

	if res := validation.ValidateShoppingItem(req); !res.IsValid {
		return "", &ValidationError{Violations: res.Errors}
	}
	if req.ListID == "" {
		return "", &ValidationError{Violations: []string{"List ID is required"}}
	}

	if !s.membership.IsMember(ctx, callerUID, req.FamilyID) {
		return "", ErrPermissionDenied
	}

	item := models.ShoppingItem{
		Name:      req.Name,
		Category:  req.Category,
		Purchased: false,
		AddedBy:   callerUID,
		AddedAt:   time.Now().UTC(),
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}

	itemID := uuid.NewString()
	if err := s.shoppingRepo.UpsertItem(ctx, req.FamilyID, req.ListID, itemID, item, callerUID); err != nil {
		s.logger.Error("shopping item creation failed",
			zap.String("familyId", req.FamilyID),
			zap.String("listId", req.ListID),
			zap.Error(err))
		return "", fmt.Errorf("failed to add item to list '%s': %w", req.ListID, err)
	}
	return itemID, nil
}

// MarkItemPurchased flips an item to purchased. Only the false-to-true
// transition triggers the approval notification to the family's parents;
// marking an already-purchased item again does nothing observable.
func (s *shoppingService) MarkItemPurchased(ctx context.Context, callerUID, familyID, listID, itemID string) error {
	if !s.membership.IsMember(ctx, callerUID, familyID) {
		return ErrPermissionDenied
	}

	prev, err := s.shoppingRepo.SetItemPurchased(ctx, familyID, listID, itemID, callerUID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Error("marking shopping item purchased failed",
			zap.String("familyId", familyID),
			zap.String("listId", listID),
			zap.String("itemId", itemID),
			zap.Error(err))
		return fmt.Errorf("failed to mark item '%s' purchased: %w", itemID, err)
	}

	if !prev.Purchased {
		item := *prev
		item.Purchased = true
		item.PurchasedBy = callerUID
		s.notifier.ShoppingItemPurchased(familyID, listID, itemID, item)
	}
	return nil
}
