package models

import "time"

// EmergencyContact is a person to reach about a child.
type EmergencyContact struct {
	Name     string `json:"name" firestore:"name"`
	Phone    string `json:"phone" firestore:"phone"`
	Relation string `json:"relation,omitempty" firestore:"relation,omitempty"`
}

// Child is a family-scoped record describing a child the family cares for.
type Child struct {
	ID                string             `json:"id" firestore:"-"`
	Name              string             `json:"name" firestore:"name"`
	FamilyID          string             `json:"familyId" firestore:"familyId"`
	BirthDate         *time.Time         `json:"birthDate,omitempty" firestore:"birthDate,omitempty"`
	MedicalConditions string             `json:"medicalConditions,omitempty" firestore:"medicalConditions,omitempty"`
	EmergencyContacts []EmergencyContact `json:"emergencyContacts,omitempty" firestore:"emergencyContacts,omitempty"`
	CreatedBy         string             `json:"createdBy" firestore:"createdBy"`
	UpdatedBy         string             `json:"updatedBy,omitempty" firestore:"updatedBy,omitempty"`
	CreatedAt         time.Time          `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt         time.Time          `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
