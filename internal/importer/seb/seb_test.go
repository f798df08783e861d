package seb_test

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sebok-dev/sebok/internal/importer/seb"
	"github.com/sebok-dev/sebok/internal/money"
)

// validRows mirrors a real SEB export: 8 preamble rows (account summary on
// row 5, blank row 6, column headers on row 8) followed by data rows.
func validRows() [][]any {
	return [][]any{
		{"Kontoutdrag"},
		{"Uttag gjorda till och med 2015-01-02"},
		nil,
		nil,
		{"Privatkonto (1234 567 890)", "2015-01-02", "12 345,67", "11 000,00"},
		nil,
		{"Kontohändelser"},
		{"Bokföringsdatum", "Valutadatum", "Verifikationsnummer", "Text", "Belopp", "Saldo"},
		{"2014-12-31", "2014-12-31", "5490790060", "WIRSTRÖMS PU/14-12-31", "-120,50", "11 120,50"},
		{"2015-01-02", "2015-01-02", "5490790061", "ICA SUPERMARKET", "-88,00", "11 032,50"},
	}
}

func buildWorkbook(t *testing.T, rows [][]any) io.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		if row == nil {
			continue
		}

		start, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", start, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	return &buf
}

func newParser(t *testing.T, opts seb.Options) *seb.Parser {
	t.Helper()

	p, err := seb.NewParser(opts)
	require.NoError(t, err)

	return p
}

func TestParser_Parse(t *testing.T) {
	p := newParser(t, seb.Options{})

	st, err := p.Parse(buildWorkbook(t, validRows()))
	require.NoError(t, err)

	assert.Equal(t, "SEB", st.BankID)
	assert.Equal(t, "SEK", st.Currency)
	assert.Equal(t, "1234 567 890", st.AccountID)
	require.Len(t, st.Lines, 2)

	card := st.Lines[0]
	assert.Equal(t, time.Date(2014, 12, 31, 0, 0, 0, 0, time.UTC), card.Date)
	assert.Equal(t, "5490790060", card.RefNum)
	assert.Equal(t, "WIRSTRÖMS PU/14-12-31", card.Memo)
	require.NotNil(t, card.DateUser)
	assert.Equal(t, time.Date(2014, 12, 31, 0, 0, 0, 0, time.UTC), *card.DateUser)
	assert.True(t, card.Amount.Equal(decimal.RequireFromString("-120.50")), "amount %s", card.Amount)
	assert.NotEmpty(t, card.ID)

	plain := st.Lines[1]
	assert.Equal(t, "ICA SUPERMARKET", plain.Memo)
	assert.Nil(t, plain.DateUser)
	assert.True(t, plain.Amount.Equal(decimal.RequireFromString("-88")))
}

func TestParser_SwedishAccountName(t *testing.T) {
	rows := validRows()
	rows[4][0] = "Företagskonto (9876 543 210)"

	st, err := newParser(t, seb.Options{}).Parse(buildWorkbook(t, rows))
	require.NoError(t, err)
	assert.Equal(t, "9876 543 210", st.AccountID)
}

func TestParser_EmptyRowInDataRegion(t *testing.T) {
	// Blank rows are formatting artifacts, not records; data after one
	// still parses.
	rows := validRows()
	rows = append(rows[:9], append([][]any{nil}, rows[9:]...)...)

	st, err := newParser(t, seb.Options{}).Parse(buildWorkbook(t, rows))
	require.NoError(t, err)
	require.Len(t, st.Lines, 2)
	assert.Equal(t, "ICA SUPERMARKET", st.Lines[1].Memo)
}

func TestParser_BriefMemo(t *testing.T) {
	brief := newParser(t, seb.Options{Brief: true})

	st, err := brief.Parse(buildWorkbook(t, validRows()))
	require.NoError(t, err)
	require.Len(t, st.Lines, 2)

	card := st.Lines[0]
	assert.Equal(t, "WIRSTRÖMS PU", card.Memo)
	require.NotNil(t, card.DateUser)
	assert.Equal(t, time.Date(2014, 12, 31, 0, 0, 0, 0, time.UTC), *card.DateUser)

	// Brief mode never touches memos without an embedded date.
	assert.Equal(t, "ICA SUPERMARKET", st.Lines[1].Memo)
	assert.Nil(t, st.Lines[1].DateUser)

	// The id covers the memo the caller actually sees, so brief and full
	// renderings of the same row get different ids.
	full, err := newParser(t, seb.Options{}).Parse(buildWorkbook(t, validRows()))
	require.NoError(t, err)
	assert.NotEqual(t, full.Lines[0].ID, card.ID)
	assert.Equal(t, full.Lines[1].ID, st.Lines[1].ID)
}

func TestParser_DeterministicIDs(t *testing.T) {
	p := newParser(t, seb.Options{})

	first, err := p.Parse(buildWorkbook(t, validRows()))
	require.NoError(t, err)

	second, err := p.Parse(buildWorkbook(t, validRows()))
	require.NoError(t, err)

	require.Len(t, second.Lines, len(first.Lines))
	for i := range first.Lines {
		assert.Equal(t, first.Lines[i].ID, second.Lines[i].ID)
	}
}

func TestParser_FooterEndsData(t *testing.T) {
	footers := []struct {
		name string
		cell string
	}{
		{name: "empty range", cell: "Datum:  -"},
		{name: "date range", cell: "Datum: 2014-12-31 - 2015-01-02"},
	}

	for _, tt := range footers {
		t.Run(tt.name, func(t *testing.T) {
			rows := append(validRows(), []any{tt.cell})

			st, err := newParser(t, seb.Options{}).Parse(buildWorkbook(t, rows))
			require.NoError(t, err)
			assert.Len(t, st.Lines, 2)
		})
	}
}

func TestParser_RowErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(rows [][]any)
		wantMsg string
	}{
		{
			name:    "malformed posting date",
			mutate:  func(rows [][]any) { rows[8][0] = "31-12-2014" },
			wantMsg: "posting date",
		},
		{
			name:    "malformed value date",
			mutate:  func(rows [][]any) { rows[8][1] = "tomorrow" },
			wantMsg: "value date",
		},
		{
			name:    "malformed amount",
			mutate:  func(rows [][]any) { rows[8][4] = "hundra" },
			wantMsg: "amount",
		},
		{
			name:    "impossible card date",
			mutate:  func(rows [][]any) { rows[8][3] = "WIRSTRÖMS PU/14-13-40" },
			wantMsg: "card purchase date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := validRows()
			tt.mutate(rows)

			_, err := newParser(t, seb.Options{}).Parse(buildWorkbook(t, rows))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantMsg)
			assert.ErrorContains(t, err, "row 9")
		})
	}
}

func TestNewParser_Locale(t *testing.T) {
	_, err := seb.NewParser(seb.Options{Locale: "xx_XX"})
	assert.ErrorIs(t, err, money.ErrUnknownLocale)

	_, err = seb.NewParser(seb.Options{Locale: "en_US"})
	assert.NoError(t, err)
}
