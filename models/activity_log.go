package models

import "time"

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// ActivityLog records a mutation attempted through the admin-gated surface.
// Written by the activity logging middleware, never read on the hot path.
type ActivityLog struct {
	ID             string    `json:"id" bson:"_id"`
	RequesterEmail string    `json:"requesterEmail" bson:"requesterEmail"`
	Action         string    `json:"action" bson:"action"`
	ResourceType   string    `json:"resourceType" bson:"resourceType"`
	ResourceID     string    `json:"resourceId,omitempty" bson:"resourceId,omitempty"`
	Status         string    `json:"status" bson:"status"`
	StatusCode     int       `json:"statusCode" bson:"statusCode"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
}
