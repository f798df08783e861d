package statement

import (
	"crypto/sha1"
	"encoding/hex"
	"time"

	"github.com/shopspring/decimal"
)

// Statement is the normalized result of parsing one bank export file.
type Statement struct {
	BankID    string
	Currency  string
	AccountID string
	Lines     []Line
}

// Line is a single normalized transaction from a statement.
type Line struct {
	ID       string // deterministic fingerprint, see TransactionID
	Date     time.Time
	DateUser *time.Time // actual purchase date when the bank embeds one in the memo
	RefNum   string
	Memo     string
	Amount   decimal.Decimal
}

// TransactionID computes a deterministic fingerprint over a line's fields.
// Identical fields always produce the identical id, so re-importing the same
// export is idempotent and downstream consumers can dedup on it.
func TransactionID(date time.Time, refnum, memo string, amount decimal.Decimal) string {
	h := sha1.New()
	h.Write([]byte(date.Format(time.DateOnly)))
	h.Write([]byte{0x1f})
	h.Write([]byte(refnum))
	h.Write([]byte{0x1f})
	h.Write([]byte(memo))
	h.Write([]byte{0x1f})
	h.Write([]byte(amount.String()))

	return hex.EncodeToString(h.Sum(nil))
}
