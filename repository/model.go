package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/andrew-chang-dewitt/hoops/logger"

	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned when a query matches no rows. Callers never see
// sql.ErrNoRows directly.
var ErrNotFound = errors.New("record not found")

// RowScanner is satisfied by both *sql.Row and *sql.Rows.
type RowScanner interface {
	Scan(dest ...any) error
}

// Model is a generic create/read/update/delete surface over a single table.
// It holds the table name, the non-id column list, and a pair of mapping
// functions between storage rows and the typed record. All SQL is generated
// with $n placeholders; identifiers come from code constants, never from
// caller input.
type Model[T any] struct {
	DB      *sql.DB
	table   string
	idCol   string
	columns []string
	scan    func(row RowScanner) (*T, error)
	values  func(record *T) []any
}

// NewModel builds a Model for one table. scan must read the id column
// followed by columns in order; values must produce the insert values for
// columns in the same order.
func NewModel[T any](
	db *sql.DB,
	table string,
	idCol string,
	columns []string,
	scan func(row RowScanner) (*T, error),
	values func(record *T) []any,
) *Model[T] {
	return &Model[T]{
		DB:      db,
		table:   table,
		idCol:   idCol,
		columns: columns,
		scan:    scan,
		values:  values,
	}
}

func (m *Model[T]) selectList() string {
	return m.idCol + ", " + strings.Join(m.columns, ", ")
}

func placeholders(start, n int) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("$%d", start+i)
	}
	return strings.Join(parts, ", ")
}

// Create inserts the record and returns the persisted row, including the
// storage-assigned identity and any column defaults.
func (m *Model[T]) Create(record *T) (*T, error) {
	log := logger.Log.WithField("table", m.table)
	log.Info("Executing query to insert a new record")

	query := fmt.Sprintf(`INSERT INTO %q (%s) VALUES (%s) RETURNING %s`,
		m.table, strings.Join(m.columns, ", "), placeholders(1, len(m.columns)), m.selectList())

	created, err := m.scan(m.DB.QueryRow(query, m.values(record)...))
	if err != nil {
		log.WithError(err).Error("Failed to execute insert query")
		return nil, fmt.Errorf("insert into %s: %w", m.table, err)
	}
	return created, nil
}

// GetByID fetches exactly one row by identity. Returns ErrNotFound when
// the row is absent.
func (m *Model[T]) GetByID(id any) (*T, error) {
	log := logger.Log.WithFields(logrus.Fields{"table": m.table, "id": id})
	log.Info("Executing query to get record by ID")

	query := fmt.Sprintf(`SELECT %s FROM %q WHERE %s = $1`,
		m.selectList(), m.table, m.idCol)

	record, err := m.scan(m.DB.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		log.WithError(err).Error("Failed to execute get by ID query")
		return nil, fmt.Errorf("select from %s: %w", m.table, err)
	}
	return record, nil
}

// GetAll returns every row matching the equality filter, in storage order.
// A nil or empty filter returns the whole table.
func (m *Model[T]) GetAll(filter map[string]any) ([]*T, error) {
	log := logger.Log.WithField("table", m.table)
	log.Info("Executing query to get records")

	query := fmt.Sprintf(`SELECT %s FROM %q`, m.selectList(), m.table)

	cols, args, err := m.filterClause(filter, 1)
	if err != nil {
		return nil, err
	}
	if len(cols) > 0 {
		query += " WHERE " + strings.Join(cols, " AND ")
	}

	rows, err := m.DB.Query(query, args...)
	if err != nil {
		log.WithError(err).Error("Failed to execute filtered select query")
		return nil, fmt.Errorf("select from %s: %w", m.table, err)
	}
	defer rows.Close()

	return m.collect(rows)
}

// Update applies a partial update by identity and returns the updated row.
// partial keys must name known columns. Returns ErrNotFound when the row
// is absent.
func (m *Model[T]) Update(id any, partial map[string]any) (*T, error) {
	log := logger.Log.WithFields(logrus.Fields{"table": m.table, "id": id})
	log.Info("Executing query to update record")

	if len(partial) == 0 {
		return m.GetByID(id)
	}

	assignments := make([]string, 0, len(partial))
	args := make([]any, 0, len(partial)+1)
	for _, col := range sortedKeys(partial) {
		if !m.knownColumn(col) {
			return nil, fmt.Errorf("update %s: unknown column %q", m.table, col)
		}
		args = append(args, partial[col])
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE %q SET %s WHERE %s = $%d RETURNING %s`,
		m.table, strings.Join(assignments, ", "), m.idCol, len(args), m.selectList())

	updated, err := m.scan(m.DB.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		log.WithError(err).Error("Failed to execute update query")
		return nil, fmt.Errorf("update %s: %w", m.table, err)
	}
	return updated, nil
}

// Delete removes a row by identity. Returns ErrNotFound when nothing was
// deleted.
func (m *Model[T]) Delete(id any) error {
	log := logger.Log.WithFields(logrus.Fields{"table": m.table, "id": id})
	log.Info("Executing query to delete record")

	query := fmt.Sprintf(`DELETE FROM %q WHERE %s = $1`, m.table, m.idCol)

	result, err := m.DB.Exec(query, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete query")
		return fmt.Errorf("delete from %s: %w", m.table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete from %s: %w", m.table, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// filterClause turns an equality filter into WHERE fragments and bind args,
// numbering placeholders from start. Keys are sorted so generated SQL is
// deterministic.
func (m *Model[T]) filterClause(filter map[string]any, start int) ([]string, []any, error) {
	if len(filter) == 0 {
		return nil, nil, nil
	}

	clauses := make([]string, 0, len(filter))
	args := make([]any, 0, len(filter))
	for _, col := range sortedKeys(filter) {
		if !m.knownColumn(col) {
			return nil, nil, fmt.Errorf("filter %s: unknown column %q", m.table, col)
		}
		args = append(args, filter[col])
		clauses = append(clauses, fmt.Sprintf("%s = $%d", col, start+len(args)-1))
	}
	return clauses, args, nil
}

func (m *Model[T]) collect(rows *sql.Rows) ([]*T, error) {
	var records []*T
	for rows.Next() {
		record, err := m.scan(rows)
		if err != nil {
			logger.Log.WithError(err).WithField("table", m.table).Error("Failed to scan row")
			return nil, fmt.Errorf("scan %s row: %w", m.table, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", m.table, err)
	}
	return records, nil
}

func (m *Model[T]) knownColumn(col string) bool {
	if col == m.idCol {
		return true
	}
	for _, c := range m.columns {
		if c == col {
			return true
		}
	}
	return false
}

func sortedKeys(values map[string]any) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
