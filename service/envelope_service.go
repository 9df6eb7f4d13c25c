package service

import (
	"errors"

	"github.com/andrew-chang-dewitt/hoops/logger"
	"github.com/andrew-chang-dewitt/hoops/model"
	"github.com/andrew-chang-dewitt/hoops/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrEnvelopeNotFound covers both a truly absent envelope and one owned by
// another user, so a caller cannot probe for foreign envelope ids.
var ErrEnvelopeNotFound = errors.New("envelope not found")

type EnvelopeService struct {
	repo repository.IEnvelopeRepository
}

func NewEnvelopeService(repo repository.IEnvelopeRepository) *EnvelopeService {
	return &EnvelopeService{repo: repo}
}

// CreateEnvelope creates a new envelope bound to the authenticated user.
// The owner comes from the token and funds always start at zero, whatever
// the request body said.
func (s *EnvelopeService) CreateEnvelope(userID uuid.UUID, name string) (*model.Envelope, error) {
	logger.Log.WithFields(logrus.Fields{
		"user_id": userID,
		"name":    name,
	}).Info("Creating a new envelope")

	envelope := &model.Envelope{
		Name:       name,
		TotalFunds: 0,
		UserID:     userID,
	}
	return s.repo.Create(envelope)
}

// ListEnvelopesForUser returns every envelope owned by the user, and never
// anyone else's. An empty result is a valid empty slice, not an error.
func (s *EnvelopeService) ListEnvelopesForUser(userID uuid.UUID) ([]*model.Envelope, error) {
	envelopes, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if envelopes == nil {
		envelopes = []*model.Envelope{}
	}
	return envelopes, nil
}

// GetEnvelopeForUser fetches a single envelope if it exists and belongs to
// the user.
func (s *EnvelopeService) GetEnvelopeForUser(id, userID uuid.UUID) (*model.Envelope, error) {
	envelope, err := s.repo.GetOwnedByID(id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEnvelopeNotFound
		}
		return nil, err
	}
	return envelope, nil
}

// UpdateEnvelopeForUser applies a partial update to an envelope the user
// owns. Ownership is verified before the update issues, so a foreign
// envelope is indistinguishable from a missing one.
func (s *EnvelopeService) UpdateEnvelopeForUser(id, userID uuid.UUID, req model.UpdateEnvelopeRequest) (*model.Envelope, error) {
	if _, err := s.GetEnvelopeForUser(id, userID); err != nil {
		return nil, err
	}

	partial := map[string]any{}
	if req.Name != nil {
		partial["name"] = *req.Name
	}
	if req.TotalFunds != nil {
		partial["total_funds"] = *req.TotalFunds
	}

	envelope, err := s.repo.Update(id, partial)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEnvelopeNotFound
		}
		return nil, err
	}
	return envelope, nil
}

// DeleteEnvelopeForUser removes an envelope the user owns.
func (s *EnvelopeService) DeleteEnvelopeForUser(id, userID uuid.UUID) error {
	if _, err := s.GetEnvelopeForUser(id, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEnvelopeNotFound
		}
		return err
	}
	return nil
}
