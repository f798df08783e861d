// Package seb parses SEB (Sweden) xlsx account statement exports into
// normalized statements.
package seb

import (
	"fmt"
	"io"
	"regexp"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/sebok-dev/sebok/internal/money"
	"github.com/sebok-dev/sebok/internal/statement"
)

const (
	// BankID and Currency are fixed for this export format.
	BankID   = "SEB"
	Currency = "SEK"

	// DefaultLocale is the number format SEB exports use.
	DefaultLocale = "sv_SE"

	dateFormat     = "2006-01-02"
	cardDateFormat = "06-01-02"
)

var (
	// Card transactions carry the purchase date inside the memo, e.g.
	// "WIRSTRÖMS PU/14-12-31": the prefix is the merchant text and the
	// suffix is the day the card was actually charged, which can differ
	// from the posting date by several days.
	cardMemoPattern = regexp.MustCompile(`^(.*)/([0-9]{2}-[0-9]{2}-[0-9]{2})$`)

	// Exports may end with a date-range footer row. A footer ends the data
	// region; it is not a transaction.
	footerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^Datum:  -`),
		regexp.MustCompile(`^Datum: [0-9]{4}-[0-9]{2}-[0-9]{2} - [0-9]{4}-[0-9]{2}-[0-9]{2}$`),
	}
)

// Options configures a Parser.
type Options struct {
	// Locale selects the number format for amount cells. Empty means
	// DefaultLocale.
	Locale string
	// Brief strips the embedded purchase-date suffix from card memos.
	Brief bool
}

// Parser converts one SEB xlsx export into a statement.
type Parser struct {
	locale string
	brief  bool
}

// NewParser builds a Parser, resolving the locale up front so a bad
// identifier fails here rather than on the first amount cell.
func NewParser(opts Options) (*Parser, error) {
	locale := opts.Locale
	if locale == "" {
		locale = DefaultLocale
	}

	if err := money.Resolve(locale); err != nil {
		return nil, err
	}

	return &Parser{locale: locale, brief: opts.Brief}, nil
}

// Parse reads an xlsx export, validates its layout and returns the
// normalized statement. Any failure aborts the whole file; no partial
// statement is ever returned.
func (p *Parser) Parse(r io.Reader) (*statement.Statement, error) {
	rows, err := sheetRows(r)
	if err != nil {
		return nil, err
	}

	pre, err := validatePreamble(rows)
	if err != nil {
		return nil, err
	}

	st := &statement.Statement{
		BankID:    BankID,
		Currency:  Currency,
		AccountID: pre.accountID(),
	}

	for i, row := range rows[preambleRows:] {
		if isEmptyRow(row) {
			continue
		}

		if isFooterRow(row) {
			break
		}

		line, err := p.parseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", preambleRows+i+1, err)
		}

		st.Lines = append(st.Lines, line)
	}

	return st, nil
}

// Validate checks only the structural layout of an export.
func Validate(r io.Reader) error {
	rows, err := sheetRows(r)
	if err != nil {
		return err
	}

	_, err = validatePreamble(rows)

	return err
}

// sheetRows opens the workbook and returns all rows of the active sheet.
func sheetRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	return rows, nil
}

// parseRecord converts one data row into a statement line. Column order is
// fixed: posting date, value date, reference number, memo, amount, balance.
// The running balance is not consumed.
func (p *Parser) parseRecord(row []string) (statement.Line, error) {
	date, err := time.Parse(dateFormat, cell(row, 0))
	if err != nil {
		return statement.Line{}, fmt.Errorf("posting date: %w", err)
	}

	// The value date never reaches the output, but a malformed one still
	// fails the record.
	if _, err := time.Parse(dateFormat, cell(row, 1)); err != nil {
		return statement.Line{}, fmt.Errorf("value date: %w", err)
	}

	amount, err := money.ParseDecimal(p.locale, cell(row, 4))
	if err != nil {
		return statement.Line{}, fmt.Errorf("amount: %w", err)
	}

	line := statement.Line{
		Date:   date,
		RefNum: cell(row, 2),
		Memo:   cell(row, 3),
		Amount: amount,
	}

	if m := cardMemoPattern.FindStringSubmatch(line.Memo); m != nil {
		userDate, err := time.Parse(cardDateFormat, m[2])
		if err != nil {
			return statement.Line{}, fmt.Errorf("card purchase date: %w", err)
		}

		if p.brief {
			line.Memo = m[1]
		}

		line.DateUser = &userDate
	}

	line.ID = statement.TransactionID(line.Date, line.RefNum, line.Memo, line.Amount)

	return line, nil
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}

	return true
}

func isFooterRow(row []string) bool {
	for _, re := range footerPatterns {
		if re.MatchString(cell(row, 0)) {
			return true
		}
	}

	return false
}

// cell returns the value at idx, or an empty string for cells the sheet
// never materialized.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return row[idx]
}
