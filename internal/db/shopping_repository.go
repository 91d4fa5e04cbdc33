package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"familysync-backend/internal/models"
)

const shoppingCollection = "shopping"

// firestoreShoppingRepository implements ShoppingRepository using
// Firestore. Lists live under families/{familyId}/shopping; items are
// entries of the list document's items map, not documents of their own.
type firestoreShoppingRepository struct {
	client *firestore.Client
}

// NewFirestoreShoppingRepository creates a new instance of firestoreShoppingRepository.
func NewFirestoreShoppingRepository(client *firestore.Client) ShoppingRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ShoppingRepository.")
	}
	return &firestoreShoppingRepository{client: client}
}

func (r *firestoreShoppingRepository) listRef(familyID, listID string) *firestore.DocumentRef {
	return r.client.Collection(familiesCollection).Doc(familyID).
		Collection(shoppingCollection).Doc(listID)
}

// GetList retrieves a shopping-list document.
func (r *firestoreShoppingRepository) GetList(ctx context.Context, familyID, listID string) (*models.ShoppingList, error) {
	if familyID == "" || listID == "" {
		return nil, errors.New("familyID and listID cannot be empty for GetList operation")
	}
	docSnap, err := r.listRef(familyID, listID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("shopping list with ID '%s' not found: %w", listID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get shopping list with ID '%s': %w", listID, err)
	}

	var list models.ShoppingList
	if err := docSnap.DataTo(&list); err != nil {
		return nil, fmt.Errorf("failed to decode shopping list data for ID '%s': %w", listID, err)
	}
	list.ID = docSnap.Ref.ID
	return &list, nil
}

// UpsertItem writes one entry of the list's items map. A merged Set
// creates the list document on first use without clobbering other items.
func (r *firestoreShoppingRepository) UpsertItem(ctx context.Context, familyID, listID, itemID string, item models.ShoppingItem, updatedBy string) error {
	if familyID == "" || listID == "" || itemID == "" {
		return errors.New("familyID, listID and itemID cannot be empty for UpsertItem operation")
	}
	_, err := r.listRef(familyID, listID).Set(ctx, map[string]interface{}{
		"familyId": familyID,
		"items": map[string]interface{}{
			itemID: item,
		},
		"updatedBy": updatedBy,
		"updatedAt": firestore.ServerTimestamp,
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to upsert item '%s' in list '%s': %w", itemID, listID, err)
	}
	return nil
}

// SetItemPurchased marks an item purchased inside a transaction and
// returns the item's state before the write, so the caller can detect
// the false-to-true transition that drives the approval notification.
func (r *firestoreShoppingRepository) SetItemPurchased(ctx context.Context, familyID, listID, itemID, purchasedBy string) (*models.ShoppingItem, error) {
	if familyID == "" || listID == "" || itemID == "" {
		return nil, errors.New("familyID, listID and itemID cannot be empty for SetItemPurchased operation")
	}
	ref := r.listRef(familyID, listID)

	var prev models.ShoppingItem
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docSnap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return fmt.Errorf("shopping list with ID '%s' not found: %w", listID, ErrNotFound)
			}
			return err
		}
		var list models.ShoppingList
		if err := docSnap.DataTo(&list); err != nil {
			return fmt.Errorf("failed to decode shopping list data for ID '%s': %w", listID, err)
		}
		item, ok := list.Items[itemID]
		if !ok {
			return fmt.Errorf("item '%s' not found in list '%s': %w", itemID, listID, ErrNotFound)
		}
		prev = item

		return tx.Update(ref, []firestore.Update{
			{FieldPath: firestore.FieldPath{"items", itemID, "purchased"}, Value: true},
			{FieldPath: firestore.FieldPath{"items", itemID, "purchasedBy"}, Value: purchasedBy},
			{Path: "updatedBy", Value: purchasedBy},
			{Path: "updatedAt", Value: firestore.ServerTimestamp},
		})
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to mark item '%s' purchased in list '%s': %w", itemID, listID, err)
	}
	return &prev, nil
}
