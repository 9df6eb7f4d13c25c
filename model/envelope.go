package model

import "github.com/google/uuid"

// Envelope is a named bucket of allocated funds belonging to one user.
type Envelope struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	TotalFunds float64   `json:"total_funds"`
	UserID     uuid.UUID `json:"user_id"`
}
