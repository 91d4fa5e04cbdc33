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

const familiesCollection = "families"

// firestoreFamilyRepository implements FamilyRepository using Firestore.
type firestoreFamilyRepository struct {
	client *firestore.Client
}

// NewFirestoreFamilyRepository creates a new instance of firestoreFamilyRepository.
func NewFirestoreFamilyRepository(client *firestore.Client) FamilyRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for FamilyRepository.")
	}
	return &firestoreFamilyRepository{client: client}
}

// GetByID retrieves a family document by its ID.
func (r *firestoreFamilyRepository) GetByID(ctx context.Context, familyID string) (*models.Family, error) {
	if familyID == "" {
		return nil, errors.New("familyID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(familiesCollection).Doc(familyID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("family with ID '%s' not found: %w", familyID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get family with ID '%s': %w", familyID, err)
	}

	var family models.Family
	if err := docSnap.DataTo(&family); err != nil {
		return nil, fmt.Errorf("failed to decode family data for ID '%s': %w", familyID, err)
	}
	family.ID = docSnap.Ref.ID
	return &family, nil
}

// CreateWithOwner creates the family document and stamps the owner's user
// document with the new familyId and parent role inside one transaction.
// Either both writes commit or neither does.
func (r *firestoreFamilyRepository) CreateWithOwner(ctx context.Context, family *models.Family, ownerUID string) (string, error) {
	if ownerUID == "" {
		return "", errors.New("ownerUID cannot be empty for CreateWithOwner operation")
	}
	docRef := r.client.Collection(familiesCollection).NewDoc()
	family.ID = docRef.ID
	userRef := r.client.Collection(usersCollection).Doc(ownerUID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := tx.Create(docRef, family); err != nil {
			return err
		}
		return tx.Update(userRef, []firestore.Update{
			{Path: "familyId", Value: family.ID},
			{Path: "role", Value: models.RoleParent},
			{Path: "updatedAt", Value: firestore.ServerTimestamp},
		})
	})
	if err != nil {
		return "", fmt.Errorf("failed to create family for owner '%s': %w", ownerUID, err)
	}
	return family.ID, nil
}

// UpdateSettings updates the family's settings and/or supermarket list.
// Nil fields are left untouched.
func (r *firestoreFamilyRepository) UpdateSettings(ctx context.Context, familyID string, settings *models.FamilySettings, supermarkets *[]string) error {
	if familyID == "" {
		return errors.New("familyID cannot be empty for UpdateSettings operation")
	}
	updates := []firestore.Update{
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	}
	if settings != nil {
		updates = append(updates, firestore.Update{Path: "settings", Value: *settings})
	}
	if supermarkets != nil {
		updates = append(updates, firestore.Update{Path: "supermarkets", Value: *supermarkets})
	}
	_, err := r.client.Collection(familiesCollection).Doc(familyID).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("family with ID '%s' not found for update: %w", familyID, ErrNotFound)
		}
		return fmt.Errorf("failed to update settings for family '%s': %w", familyID, err)
	}
	return nil
}
