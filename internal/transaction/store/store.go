package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/google/uuid"

	"github.com/sebok-dev/sebok/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTransaction reads a transaction row from the scanner.
// Expected column order: id, fingerprint, account_id, date, date_user, refnum, memo, amount, created_at
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	if err := s.Scan(
		&tx.ID, &tx.Fingerprint, &tx.AccountID, &tx.Date, &tx.DateUser,
		&tx.RefNum, &tx.Memo, &tx.Amount, &tx.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &tx, nil
}

const selectTransactionColumns = `
	id, fingerprint, account_id, date, date_user, refnum, memo, amount, created_at
`

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE id = $1`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.AccountID != nil {
		query += fmt.Sprintf(" AND account_id = $%d", argIdx)

		args = append(args, *filter.AccountID)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY date ASC, created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

// importLockKey hashes an account id into an advisory lock key so two
// concurrent imports for the same account serialize.
func importLockKey(accountID string) int64 {
	h := fnv.New64a()
	h.Write([]byte(accountID))

	return int64(h.Sum64())
}

type importTx struct {
	tx *sql.Tx
}

func (s *Store) BeginImport(ctx context.Context, accountID string) (transaction.ImportTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning import tx: %w", err)
	}

	lockKey := importLockKey(accountID)
	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring import lock: %w", err)
	}

	return &importTx{tx: dbTx}, nil
}

func (itx *importTx) Commit() error   { return itx.tx.Commit() }
func (itx *importTx) Rollback() error { return itx.tx.Rollback() }

func (itx *importTx) ExistingFingerprints(ctx context.Context, accountID string, fingerprints []string) (map[string]struct{}, error) {
	if len(fingerprints) == 0 {
		return map[string]struct{}{}, nil
	}

	placeholders := make([]string, len(fingerprints))
	args := make([]any, 0, len(fingerprints)+1)
	args = append(args, accountID)

	for i, fp := range fingerprints {
		placeholders[i] = fmt.Sprintf("$%d", i+2)
		args = append(args, fp)
	}

	query := `SELECT fingerprint FROM transactions
		WHERE account_id = $1 AND fingerprint IN (` + strings.Join(placeholders, ", ") + `)`

	rows, err := itx.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying fingerprints: %w", err)
	}
	defer rows.Close()

	existing := make(map[string]struct{})

	for rows.Next() {
		var fp string
		if err := rows.Scan(&fp); err != nil {
			return nil, fmt.Errorf("scanning fingerprint: %w", err)
		}

		existing[fp] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fingerprint rows: %w", err)
	}

	return existing, nil
}

func (itx *importTx) CreateTransactions(ctx context.Context, txs []*transaction.Transaction) error {
	query := `
		INSERT INTO transactions (fingerprint, account_id, date, date_user, refnum, memo, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	for _, tx := range txs {
		err := itx.tx.QueryRowContext(ctx, query,
			tx.Fingerprint,
			tx.AccountID,
			tx.Date,
			tx.DateUser,
			tx.RefNum,
			tx.Memo,
			tx.Amount,
		).Scan(&tx.ID, &tx.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating transaction: %w", err)
		}
	}

	return nil
}
