package domain

import "time"

// Notification is a best-effort event record shown to a user. Creation is
// fire-and-forget from the lifecycle engine's perspective.
type Notification struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	RecipientID string    `json:"recipient_id" bson:"recipient_id"`
	Message     string    `json:"message" bson:"message"`
	MissionID   string    `json:"mission_id,omitempty" bson:"mission_id,omitempty"`
	Read        bool      `json:"read" bson:"read"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
