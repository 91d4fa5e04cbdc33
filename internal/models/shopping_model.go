package models

import "time"

// ShoppingItem is one entry in a shopping list's items map.
// Items live inside the list document rather than as documents of their
// own, so ids are generated by the service, not by Firestore.
type ShoppingItem struct {
	Name        string    `json:"name" firestore:"name"`
	Quantity    float64   `json:"quantity,omitempty" firestore:"quantity,omitempty"`
	Category    string    `json:"category,omitempty" firestore:"category,omitempty"`
	Purchased   bool      `json:"purchased" firestore:"purchased"`
	PurchasedBy string    `json:"purchasedBy,omitempty" firestore:"purchasedBy,omitempty"`
	AddedBy     string    `json:"addedBy" firestore:"addedBy"`
	AddedAt     time.Time `json:"addedAt" firestore:"addedAt"`
}

// ShoppingList is a family-scoped list holding items keyed by generated id.
type ShoppingList struct {
	ID        string                  `json:"id" firestore:"-"`
	FamilyID  string                  `json:"familyId" firestore:"familyId"`
	Name      string                  `json:"name,omitempty" firestore:"name,omitempty"`
	Items     map[string]ShoppingItem `json:"items" firestore:"items"`
	UpdatedBy string                  `json:"updatedBy,omitempty" firestore:"updatedBy,omitempty"`
	CreatedAt time.Time               `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time               `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
