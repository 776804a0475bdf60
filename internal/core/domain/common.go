package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// CreatedBy / LastUpdatedBy carry the actor id supplied by the identity
// context; they are empty when no actor is attached to the request.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
