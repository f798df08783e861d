package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sebok-dev/sebok/internal/statement"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)

	BeginImport(ctx context.Context, accountID string) (ImportTx, error)
}

type ImportTx interface {
	ExistingFingerprints(ctx context.Context, accountID string, fingerprints []string) (map[string]struct{}, error)
	CreateTransactions(ctx context.Context, txs []*Transaction) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ListFilter struct {
	AccountID *string
	StartDate *time.Time
	EndDate   *time.Time
}

type ImportResult struct {
	Imported []*Transaction
	Skipped  int
}

// ImportStatement stores a parsed statement's lines, skipping any line whose
// fingerprint is already present for the account. Re-importing the same
// export is therefore a no-op.
func (s *Service) ImportStatement(ctx context.Context, st *statement.Statement) (*ImportResult, error) {
	if len(st.Lines) == 0 {
		return &ImportResult{}, nil
	}

	itx, err := s.repo.BeginImport(ctx, st.AccountID)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	fingerprints := make([]string, 0, len(st.Lines))
	for _, line := range st.Lines {
		fingerprints = append(fingerprints, line.ID)
	}

	existing, err := itx.ExistingFingerprints(ctx, st.AccountID, fingerprints)
	if err != nil {
		return nil, fmt.Errorf("find existing fingerprints: %w", err)
	}

	var txs []*Transaction

	skipped := 0
	seen := make(map[string]struct{}, len(st.Lines))

	for _, line := range st.Lines {
		_, stored := existing[line.ID]

		// Identical rows inside one file share a fingerprint too.
		_, batch := seen[line.ID]

		if stored || batch {
			skipped++
			continue
		}

		seen[line.ID] = struct{}{}

		txs = append(txs, &Transaction{
			Fingerprint: line.ID,
			AccountID:   st.AccountID,
			Date:        line.Date,
			DateUser:    line.DateUser,
			RefNum:      line.RefNum,
			Memo:        line.Memo,
			Amount:      line.Amount,
		})
	}

	if len(txs) > 0 {
		if err := itx.CreateTransactions(ctx, txs); err != nil {
			return nil, fmt.Errorf("create transactions: %w", err)
		}
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return &ImportResult{Imported: txs, Skipped: skipped}, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}
