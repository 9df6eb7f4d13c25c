package model

import (
	"time"
)

// Transaction is a recorded monetary event, independent of any envelope.
type Transaction struct {
	ID          int64     `json:"id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Payee       string    `json:"payee"`
	Timestamp   time.Time `json:"timestamp"`
}
