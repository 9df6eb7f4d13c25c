// file: model/request.go

package model

import "time"

// RegisterRequest defines the payload for creating a new user.
// It includes validation tags to ensure data integrity at the entry point.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest defines the payload for user authentication.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// CreateEnvelopeRequest defines the payload for creating an envelope.
// The owner is always taken from the auth token, so any user_id in the
// body is ignored; funds always start at zero.
type CreateEnvelopeRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateEnvelopeRequest defines the payload for a partial envelope update.
// Omitted fields are left unchanged.
type UpdateEnvelopeRequest struct {
	Name       *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	TotalFunds *float64 `json:"total_funds,omitempty" validate:"omitempty,gte=0"`
}

// CreateTransactionRequest defines the payload for recording a transaction.
// Timestamp is optional; the current time is used when absent.
type CreateTransactionRequest struct {
	Amount      float64    `json:"amount" validate:"required"`
	Description string     `json:"description" validate:"max=500"`
	Payee       string     `json:"payee" validate:"required,min=1,max=100"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
}
