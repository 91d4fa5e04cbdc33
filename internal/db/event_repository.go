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

const calendarCollection = "calendar"

// firestoreEventRepository implements EventRepository using Firestore.
// Events live in a subcollection under their family document.
type firestoreEventRepository struct {
	client *firestore.Client
}

// NewFirestoreEventRepository creates a new instance of firestoreEventRepository.
func NewFirestoreEventRepository(client *firestore.Client) EventRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for EventRepository.")
	}
	return &firestoreEventRepository{client: client}
}

func (r *firestoreEventRepository) eventRef(familyID, eventID string) *firestore.DocumentRef {
	return r.client.Collection(familiesCollection).Doc(familyID).
		Collection(calendarCollection).Doc(eventID)
}

// Create adds an event document with an auto-generated ID under
// families/{familyId}/calendar.
func (r *firestoreEventRepository) Create(ctx context.Context, event *models.CalendarEvent) (string, error) {
	if event.FamilyID == "" {
		return "", errors.New("event familyID cannot be empty for Create operation")
	}
	docRef := r.client.Collection(familiesCollection).Doc(event.FamilyID).
		Collection(calendarCollection).NewDoc()
	event.ID = docRef.ID

	if _, err := docRef.Create(ctx, event); err != nil {
		return "", fmt.Errorf("failed to create event in family '%s': %w", event.FamilyID, err)
	}
	return docRef.ID, nil
}

// GetByID retrieves an event document.
func (r *firestoreEventRepository) GetByID(ctx context.Context, familyID, eventID string) (*models.CalendarEvent, error) {
	if familyID == "" || eventID == "" {
		return nil, errors.New("familyID and eventID cannot be empty for GetByID operation")
	}
	docSnap, err := r.eventRef(familyID, eventID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("event with ID '%s' not found: %w", eventID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get event with ID '%s': %w", eventID, err)
	}

	var event models.CalendarEvent
	if err := docSnap.DataTo(&event); err != nil {
		return nil, fmt.Errorf("failed to decode event data for ID '%s': %w", eventID, err)
	}
	event.ID = docSnap.Ref.ID
	return &event, nil
}

// Update overwrites an event document with the given state.
func (r *firestoreEventRepository) Update(ctx context.Context, event *models.CalendarEvent) error {
	if event.ID == "" || event.FamilyID == "" {
		return errors.New("event ID and familyID cannot be empty for Update operation")
	}
	_, err := r.eventRef(event.FamilyID, event.ID).Set(ctx, event, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update event with ID '%s': %w", event.ID, err)
	}
	return nil
}

// ListByFamily returns every calendar event of a family, ordered by start time.
func (r *firestoreEventRepository) ListByFamily(ctx context.Context, familyID string) ([]*models.CalendarEvent, error) {
	if familyID == "" {
		return nil, errors.New("familyID cannot be empty for ListByFamily operation")
	}
	iter := r.client.Collection(familiesCollection).Doc(familyID).
		Collection(calendarCollection).OrderBy("startTime", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var events []*models.CalendarEvent
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate events for family '%s': %w", familyID, err)
		}
		var event models.CalendarEvent
		if err := doc.DataTo(&event); err != nil {
			log.Printf("Error decoding event data (ID: %s) for family '%s': %v. Skipping.", doc.Ref.ID, familyID, err)
			continue
		}
		event.ID = doc.Ref.ID
		events = append(events, &event)
	}
	return events, nil
}
