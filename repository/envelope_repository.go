package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/andrew-chang-dewitt/hoops/logger"
	"github.com/andrew-chang-dewitt/hoops/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// IEnvelopeRepository defines the contract for envelope database operations.
type IEnvelopeRepository interface {
	Create(envelope *model.Envelope) (*model.Envelope, error)
	GetByUserID(userID uuid.UUID) ([]*model.Envelope, error)
	GetOwnedByID(id, userID uuid.UUID) (*model.Envelope, error)
	Update(id any, partial map[string]any) (*model.Envelope, error)
	Delete(id any) error
}

// EnvelopeRepository implements IEnvelopeRepository on top of the generic
// model engine, adding the owner-scoped reads.
type EnvelopeRepository struct {
	*Model[model.Envelope]
}

func NewEnvelopeRepository(db *sql.DB) *EnvelopeRepository {
	return &EnvelopeRepository{
		Model: NewModel(
			db,
			"envelope",
			"id",
			[]string{"name", "total_funds", "user_id"},
			scanEnvelope,
			envelopeValues,
		),
	}
}

func scanEnvelope(row RowScanner) (*model.Envelope, error) {
	var e model.Envelope
	if err := row.Scan(&e.ID, &e.Name, &e.TotalFunds, &e.UserID); err != nil {
		return nil, err
	}
	return &e, nil
}

func envelopeValues(e *model.Envelope) []any {
	return []any{e.Name, e.TotalFunds, e.UserID}
}

// GetByUserID retrieves all envelopes belonging to one user.
func (r *EnvelopeRepository) GetByUserID(userID uuid.UUID) ([]*model.Envelope, error) {
	return r.GetAll(map[string]any{"user_id": userID})
}

// GetOwnedByID retrieves one envelope only if it belongs to the given user.
// The ownership check is part of the statement itself, so a foreign
// envelope and a missing one are the same ErrNotFound.
func (r *EnvelopeRepository) GetOwnedByID(id, userID uuid.UUID) (*model.Envelope, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"envelope_id": id,
		"user_id":     userID,
	})
	log.Info("Executing query to get envelope scoped to owner")

	query := `SELECT id, name, total_funds, user_id FROM "envelope" WHERE id = $1 AND user_id = $2`
	envelope, err := scanEnvelope(r.DB.QueryRow(query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		log.WithError(err).Error("Failed to execute owner-scoped envelope query")
		return nil, fmt.Errorf("select from envelope: %w", err)
	}
	return envelope, nil
}
