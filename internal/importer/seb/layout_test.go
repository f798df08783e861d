package seb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebok-dev/sebok/internal/importer/seb"
)

func TestValidate_AcceptsWellFormedExport(t *testing.T) {
	assert.NoError(t, seb.Validate(buildWorkbook(t, validRows())))
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name      string
		rows      func() [][]any
		wantCheck string
	}{
		{
			name: "too few rows",
			rows: func() [][]any {
				return validRows()[:7]
			},
			wantCheck: "row count",
		},
		{
			name: "preamble row too wide",
			rows: func() [][]any {
				rows := validRows()
				rows[0] = []any{"a", "b", "c", "d", "e", "f", "g"}
				return rows
			},
			wantCheck: "cell count",
		},
		{
			name: "account cell does not match pattern",
			rows: func() [][]any {
				rows := validRows()
				rows[4][0] = "Privatkonto 1234 567 890"
				return rows
			},
			wantCheck: "account row",
		},
		{
			name: "account row tail not empty",
			rows: func() [][]any {
				rows := validRows()
				rows[4] = []any{"Privatkonto (1234 567 890)", "", "", "", "", "x"}
				return rows
			},
			wantCheck: "account row",
		},
		{
			name: "separator row not blank",
			rows: func() [][]any {
				rows := validRows()
				rows[5] = []any{"", "", "oops"}
				return rows
			},
			wantCheck: "separator row",
		},
		{
			name: "wrong column header",
			rows: func() [][]any {
				rows := validRows()
				rows[7][4] = "Amount"
				return rows
			},
			wantCheck: "column header row",
		},
		{
			name: "header row in wrong order",
			rows: func() [][]any {
				rows := validRows()
				rows[7] = []any{"Valutadatum", "Bokföringsdatum", "Verifikationsnummer", "Text", "Belopp", "Saldo"}
				return rows
			},
			wantCheck: "column header row",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := seb.Validate(buildWorkbook(t, tt.rows()))
			require.Error(t, err)

			var layoutErr *seb.LayoutError
			require.ErrorAs(t, err, &layoutErr)
			assert.Equal(t, tt.wantCheck, layoutErr.Check)
		})
	}
}

func TestValidate_FailureAbortsParse(t *testing.T) {
	rows := validRows()
	rows[7][0] = "Datum"

	p, err := seb.NewParser(seb.Options{})
	require.NoError(t, err)

	st, err := p.Parse(buildWorkbook(t, rows))
	require.Error(t, err)
	assert.Nil(t, st)
}
