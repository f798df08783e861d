package seb

import (
	"fmt"
	"regexp"
)

// The export starts with a fixed 8-row preamble: account summary on the 5th
// row, a blank separator on the 6th, and the column header row on the 8th.
const (
	preambleRows  = 8
	rowCells      = 6
	accountRowIdx = 4
	blankRowIdx   = 5
	headerRowIdx  = 7
)

var (
	// Account names use Swedish letters ("Företagskonto"), so the word class
	// must cover Unicode letters, not just ASCII \w.
	accountPattern = regexp.MustCompile(`^[\p{L}\p{N}_]+\s\(([0-9\s]+)\)$`)

	headerLabels = []string{
		"Bokföringsdatum",
		"Valutadatum",
		"Verifikationsnummer",
		"Text",
		"Belopp",
		"Saldo",
	}
)

// LayoutError reports the first structural rule an export violated.
type LayoutError struct {
	Check  string
	Detail string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("invalid SEB export layout: %s: %s", e.Check, e.Detail)
}

// preamble is the first 8 rows of the sheet, each padded to exactly 6 cells.
type preamble [][]string

// layoutCheck is one named structural rule. run returns a failure detail, or
// an empty string when the rule holds.
type layoutCheck struct {
	name string
	run  func(p preamble) string
}

// preambleChecks is the ordered rule chain; validation stops at the first
// failure and reports it under the rule's name.
var preambleChecks = []layoutCheck{
	{name: "account row", run: checkAccountRow},
	{name: "separator row", run: checkSeparatorRow},
	{name: "column header row", run: checkHeaderRow},
}

// validatePreamble checks the sheet against the fixed SEB export layout and
// returns the normalized preamble rows.
func validatePreamble(rows [][]string) (preamble, error) {
	if len(rows) < preambleRows {
		return nil, &LayoutError{
			Check:  "row count",
			Detail: fmt.Sprintf("sheet has %d rows, the preamble alone needs %d", len(rows), preambleRows),
		}
	}

	p := make(preamble, preambleRows)

	for i, row := range rows[:preambleRows] {
		if len(row) > rowCells {
			return nil, &LayoutError{
				Check:  "cell count",
				Detail: fmt.Sprintf("row %d has %d cells, want at most %d", i+1, len(row), rowCells),
			}
		}

		padded := make([]string, rowCells)
		copy(padded, row)
		p[i] = padded
	}

	for _, check := range preambleChecks {
		if detail := check.run(p); detail != "" {
			return nil, &LayoutError{Check: check.name, Detail: detail}
		}
	}

	return p, nil
}

// accountID extracts the account identifier from the account summary row.
// Only valid on a preamble that passed validation.
func (p preamble) accountID() string {
	return accountPattern.FindStringSubmatch(p[accountRowIdx][0])[1]
}

func checkAccountRow(p preamble) string {
	row := p[accountRowIdx]

	if !accountPattern.MatchString(row[0]) {
		return fmt.Sprintf("first cell %q does not look like an account summary", row[0])
	}

	if row[rowCells-2] != "" || row[rowCells-1] != "" {
		return "last two cells must be empty"
	}

	return ""
}

func checkSeparatorRow(p preamble) string {
	for i, cell := range p[blankRowIdx] {
		if cell != "" {
			return fmt.Sprintf("cell %d is %q, want an entirely blank row", i+1, cell)
		}
	}

	return ""
}

func checkHeaderRow(p preamble) string {
	for i, want := range headerLabels {
		if got := p[headerRowIdx][i]; got != want {
			return fmt.Sprintf("column %d is %q, want %q", i+1, got, want)
		}
	}

	return ""
}
