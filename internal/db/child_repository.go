package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"

	"familysync-backend/internal/models"
)

const childrenCollection = "children"

// firestoreChildRepository implements ChildRepository using Firestore.
// Children live in a subcollection under their family document.
type firestoreChildRepository struct {
	client *firestore.Client
}

// NewFirestoreChildRepository creates a new instance of firestoreChildRepository.
func NewFirestoreChildRepository(client *firestore.Client) ChildRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ChildRepository.")
	}
	return &firestoreChildRepository{client: client}
}

// Create adds a child document with an auto-generated ID under
// families/{familyId}/children.
func (r *firestoreChildRepository) Create(ctx context.Context, child *models.Child) (string, error) {
	if child.FamilyID == "" {
		return "", errors.New("child familyID cannot be empty for Create operation")
	}
	docRef := r.client.Collection(familiesCollection).Doc(child.FamilyID).
		Collection(childrenCollection).NewDoc()
	child.ID = docRef.ID

	if _, err := docRef.Create(ctx, child); err != nil {
		return "", fmt.Errorf("failed to create child in family '%s': %w", child.FamilyID, err)
	}
	return docRef.ID, nil
}
