package service

import (
	"errors"
	"time"

	"github.com/andrew-chang-dewitt/hoops/logger"
	"github.com/andrew-chang-dewitt/hoops/model"
	"github.com/andrew-chang-dewitt/hoops/repository"

	"github.com/sirupsen/logrus"
)

// ErrInvalidLimit is returned before any query executes when a negative
// listing limit is requested.
var ErrInvalidLimit = errors.New("limit must be zero or greater")

type TransactionService struct {
	repo repository.ITransactionRepository
}

func NewTransactionService(repo repository.ITransactionRepository) *TransactionService {
	return &TransactionService{repo: repo}
}

// RecordTransaction persists a new monetary event. An absent timestamp
// means "now".
func (s *TransactionService) RecordTransaction(req model.CreateTransactionRequest) (*model.Transaction, error) {
	timestamp := time.Now().UTC()
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	}

	logger.Log.WithFields(logrus.Fields{
		"amount": req.Amount,
		"payee":  req.Payee,
	}).Info("Recording a new transaction")

	transaction := &model.Transaction{
		Amount:      req.Amount,
		Description: req.Description,
		Payee:       req.Payee,
		Timestamp:   timestamp,
	}
	return s.repo.Create(transaction)
}

// ListTransactions returns transactions ordered ascending by timestamp.
// A nil limit returns every record; a non-negative limit caps the result.
func (s *TransactionService) ListTransactions(limit *int) ([]*model.Transaction, error) {
	if limit != nil && *limit < 0 {
		return nil, ErrInvalidLimit
	}

	transactions, err := s.repo.Many(limit)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		transactions = []*model.Transaction{}
	}
	return transactions, nil
}
