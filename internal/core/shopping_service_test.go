package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"familysync-backend/internal/models"
)

func TestCreateShoppingItem(t *testing.T) {
	ctx := context.Background()

	t.Run("creates item with generated id and caller attribution", func(t *testing.T) {
		var gotItem models.ShoppingItem
		var gotItemID string
		repo := &fakeShoppingRepo{
			upsertItem: func(ctx context.Context, familyID, listID, itemID string, item models.ShoppingItem, updatedBy string) error {
				gotItem = item
				gotItemID = itemID
				assert.Equal(t, "fam-1", familyID)
				assert.Equal(t, "list-1", listID)
				assert.Equal(t, "uid-1", updatedBy)
				return nil
			},
		}
		svc := NewShoppingService(repo, allowMember("uid-1", "fam-1"), &recordingNotifier{}, zap.NewNop())

		qty := 2.0
		id, err := svc.CreateItem(ctx, "uid-1", models.CreateShoppingItemRequest{
			FamilyID: "fam-1",
			ListID:   "list-1",
			Name:     "Milk",
			Quantity: &qty,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, gotItemID)
		assert.Equal(t, "Milk", gotItem.Name)
		assert.Equal(t, 2.0, gotItem.Quantity)
		assert.Equal(t, "uid-1", gotItem.AddedBy)
		assert.False(t, gotItem.Purchased)
		assert.False(t, gotItem.AddedAt.IsZero())
	})

	t.Run("invalid item rejected before write", func(t *testing.T) {
		svc := NewShoppingService(&fakeShoppingRepo{}, allowMember("uid-1", "fam-1"), &recordingNotifier{}, zap.NewNop())
		_, err := svc.CreateItem(ctx, "uid-1", models.CreateShoppingItemRequest{FamilyID: "fam-1", ListID: "list-1"})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Violations, "Item name is required")
	})

	t.Run("missing list id rejected", func(t *testing.T) {
		svc := NewShoppingService(&fakeShoppingRepo{}, allowMember("uid-1", "fam-1"), &recordingNotifier{}, zap.NewNop())
		_, err := svc.CreateItem(ctx, "uid-1", models.CreateShoppingItemRequest{FamilyID: "fam-1", Name: "Milk"})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Violations, "List ID is required")
	})

	t.Run("non-member denied", func(t *testing.T) {
		svc := NewShoppingService(&fakeShoppingRepo{}, &stubMembership{}, &recordingNotifier{}, zap.NewNop())
		_, err := svc.CreateItem(ctx, "uid-1", models.CreateShoppingItemRequest{
			FamilyID: "fam-1",
			ListID:   "list-1",
			Name:     "Milk",
		})
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})
}

func TestMarkItemPurchased(t *testing.T) {
	ctx := context.Background()

	t.Run("false to true transition notifies", func(t *testing.T) {
		repo := &fakeShoppingRepo{
			setItemPurchased: func(ctx context.Context, familyID, listID, itemID, purchasedBy string) (*models.ShoppingItem, error) {
				return &models.ShoppingItem{Name: "Milk", Purchased: false}, nil
			},
		}
		notifier := &recordingNotifier{}
		svc := NewShoppingService(repo, allowMember("uid-1", "fam-1"), notifier, zap.NewNop())

		require.NoError(t, svc.MarkItemPurchased(ctx, "uid-1", "fam-1", "list-1", "item-1"))
		require.Len(t, notifier.purchasedItems, 1)
		assert.Equal(t, "Milk", notifier.purchasedItems[0].Name)
		assert.True(t, notifier.purchasedItems[0].Purchased)
		assert.Equal(t, "uid-1", notifier.purchasedItems[0].PurchasedBy)
	})

	t.Run("re-purchasing does not notify again", func(t *testing.T) {
		repo := &fakeShoppingRepo{
			setItemPurchased: func(ctx context.Context, familyID, listID, itemID, purchasedBy string) (*models.ShoppingItem, error) {
				return &models.ShoppingItem{Name: "Milk", Purchased: true}, nil
			},
		}
		notifier := &recordingNotifier{}
		svc := NewShoppingService(repo, allowMember("uid-1", "fam-1"), notifier, zap.NewNop())

		require.NoError(t, svc.MarkItemPurchased(ctx, "uid-1", "fam-1", "list-1", "item-1"))
		assert.Empty(t, notifier.purchasedItems)
	})

	t.Run("non-member denied", func(t *testing.T) {
		svc := NewShoppingService(&fakeShoppingRepo{}, &stubMembership{}, &recordingNotifier{}, zap.NewNop())
		assert.ErrorIs(t, svc.MarkItemPurchased(ctx, "uid-1", "fam-1", "list-1", "item-1"), ErrPermissionDenied)
	})
}
