package commands_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sebok-dev/sebok/internal/commands"
)

// writeExport writes a minimal valid SEB export to a temp file.
func writeExport(t *testing.T, mutate func(f *excelize.File)) string {
	t.Helper()

	rows := [][]any{
		{"Kontoutdrag"},
		{"Uttag gjorda till och med 2015-01-02"},
		nil,
		nil,
		{"Privatkonto (1234 567 890)", "2015-01-02", "12 345,67", "11 000,00"},
		nil,
		{"Kontohändelser"},
		{"Bokföringsdatum", "Valutadatum", "Verifikationsnummer", "Text", "Belopp", "Saldo"},
		{"2014-12-31", "2014-12-31", "5490790060", "WIRSTRÖMS PU/14-12-31", "-120,50", "11 120,50"},
	}

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

	if mutate != nil {
		mutate(f)
	}

	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, f.SaveAs(path))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := commands.NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	path := writeExport(t, nil)

	out, err := run(t, "convert", path)
	require.NoError(t, err)

	var got struct {
		BankID    string `json:"bank_id"`
		AccountID string `json:"account_id"`
		Lines     []struct {
			Memo     string `json:"memo"`
			DateUser string `json:"date_user"`
		} `json:"lines"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, "SEB", got.BankID)
	assert.Equal(t, "1234 567 890", got.AccountID)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, "WIRSTRÖMS PU/14-12-31", got.Lines[0].Memo)
	assert.Equal(t, "2014-12-31", got.Lines[0].DateUser)
}

func TestConvertCommand_Brief(t *testing.T) {
	path := writeExport(t, nil)

	out, err := run(t, "convert", path, "--brief")
	require.NoError(t, err)
	assert.Contains(t, out, `"WIRSTRÖMS PU"`)
	assert.Contains(t, out, `"date_user": "2014-12-31"`)
}

func TestConvertCommand_UnknownLocale(t *testing.T) {
	path := writeExport(t, nil)

	_, err := run(t, "convert", path, "--locale", "xx_XX")
	require.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	path := writeExport(t, nil)

	out, err := run(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "layout OK")
}

func TestValidateCommand_BadLayout(t *testing.T) {
	path := writeExport(t, func(f *excelize.File) {
		require.NoError(t, f.SetCellValue("Sheet1", "E8", "Amount"))
	})

	_, err := run(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column header row")
}
