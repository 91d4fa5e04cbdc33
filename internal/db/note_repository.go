package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"familysync-backend/internal/models"
)

const notesCollection = "notes"

// firestoreNoteRepository implements NoteRepository using Firestore.
// Notes live in a subcollection under their family document.
type firestoreNoteRepository struct {
	client *firestore.Client
}

// NewFirestoreNoteRepository creates a new instance of firestoreNoteRepository.
func NewFirestoreNoteRepository(client *firestore.Client) NoteRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for NoteRepository.")
	}
	return &firestoreNoteRepository{client: client}
}

func (r *firestoreNoteRepository) noteRef(familyID, noteID string) *firestore.DocumentRef {
	return r.client.Collection(familiesCollection).Doc(familyID).
		Collection(notesCollection).Doc(noteID)
}

// Create adds a note document with an auto-generated ID under
// families/{familyId}/notes.
func (r *firestoreNoteRepository) Create(ctx context.Context, note *models.FamilyNote) (string, error) {
	if note.FamilyID == "" {
		return "", errors.New("note familyID cannot be empty for Create operation")
	}
	docRef := r.client.Collection(familiesCollection).Doc(note.FamilyID).
		Collection(notesCollection).NewDoc()
	note.ID = docRef.ID

	if _, err := docRef.Create(ctx, note); err != nil {
		return "", fmt.Errorf("failed to create note in family '%s': %w", note.FamilyID, err)
	}
	return docRef.ID, nil
}

// ListByFamily returns every note of a family, newest first.
func (r *firestoreNoteRepository) ListByFamily(ctx context.Context, familyID string) ([]*models.FamilyNote, error) {
	if familyID == "" {
		return nil, errors.New("familyID cannot be empty for ListByFamily operation")
	}
	iter := r.client.Collection(familiesCollection).Doc(familyID).
		Collection(notesCollection).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var notes []*models.FamilyNote
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate notes for family '%s': %w", familyID, err)
		}
		var note models.FamilyNote
		if err := doc.DataTo(&note); err != nil {
			log.Printf("Error decoding note data (ID: %s) for family '%s': %v. Skipping.", doc.Ref.ID, familyID, err)
			continue
		}
		note.ID = doc.Ref.ID
		notes = append(notes, &note)
	}
	return notes, nil
}

// Dismiss unions userID into the note's dismissedBy set and returns the
// updated note. ArrayUnion makes repeated dismissals a no-op.
func (r *firestoreNoteRepository) Dismiss(ctx context.Context, familyID, noteID, userID string) (*models.FamilyNote, error) {
	if familyID == "" || noteID == "" || userID == "" {
		return nil, errors.New("familyID, noteID and userID cannot be empty for Dismiss operation")
	}
	ref := r.noteRef(familyID, noteID)
	_, err := ref.Update(ctx, []firestore.Update{
		{Path: "dismissedBy", Value: firestore.ArrayUnion(userID)},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("note with ID '%s' not found: %w", noteID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to dismiss note '%s': %w", noteID, err)
	}

	docSnap, err := ref.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read note '%s' after dismiss: %w", noteID, err)
	}
	var note models.FamilyNote
	if err := docSnap.DataTo(&note); err != nil {
		return nil, fmt.Errorf("failed to decode note data for ID '%s': %w", noteID, err)
	}
	note.ID = docSnap.Ref.ID
	return &note, nil
}
