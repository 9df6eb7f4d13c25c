package repository

import (
	"database/sql"
	"fmt"

	"github.com/andrew-chang-dewitt/hoops/logger"
	"github.com/andrew-chang-dewitt/hoops/model"
)

// ITransactionRepository defines the contract for transaction database
// operations.
type ITransactionRepository interface {
	Create(transaction *model.Transaction) (*model.Transaction, error)
	GetByID(id any) (*model.Transaction, error)
	Many(limit *int) ([]*model.Transaction, error)
}

// TransactionRepository implements ITransactionRepository, composing the
// generic model engine with a time-ordered listing extension.
type TransactionRepository struct {
	*Model[model.Transaction]
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{
		Model: NewModel(
			db,
			"transaction",
			"id",
			[]string{"amount", "description", "payee", "timestamp"},
			scanTransaction,
			transactionValues,
		),
	}
}

func scanTransaction(row RowScanner) (*model.Transaction, error) {
	var t model.Transaction
	if err := row.Scan(&t.ID, &t.Amount, &t.Description, &t.Payee, &t.Timestamp); err != nil {
		return nil, err
	}
	return &t, nil
}

func transactionValues(t *model.Transaction) []any {
	return []any{t.Amount, t.Description, t.Payee, t.Timestamp}
}

// Many returns transaction records ordered ascending by timestamp. A nil
// limit means no LIMIT clause at all; a present value is bound as a
// parameter, never interpolated.
func (r *TransactionRepository) Many(limit *int) ([]*model.Transaction, error) {
	log := logger.Log.WithField("table", r.table)
	log.Info("Executing query to list transactions ordered by timestamp")

	query := `SELECT id, amount, description, payee, timestamp FROM "transaction" ORDER BY timestamp`

	var (
		rows *sql.Rows
		err  error
	)
	if limit != nil {
		rows, err = r.DB.Query(query+` LIMIT $1`, *limit)
	} else {
		rows, err = r.DB.Query(query)
	}
	if err != nil {
		log.WithError(err).Error("Failed to execute transaction listing query")
		return nil, fmt.Errorf("select from transaction: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}
