package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("transaction not found")

// Transaction is one imported statement line as stored.
type Transaction struct {
	ID          uuid.UUID
	Fingerprint string // deterministic id from the parser, unique per account
	AccountID   string
	Date        time.Time
	DateUser    *time.Time
	RefNum      string
	Memo        string
	Amount      decimal.Decimal
	CreatedAt   time.Time
}
