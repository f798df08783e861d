package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sebok-dev/sebok/internal/importer/seb"
	"github.com/sebok-dev/sebok/internal/statement"
)

type statementJSON struct {
	BankID    string     `json:"bank_id"`
	Currency  string     `json:"currency"`
	AccountID string     `json:"account_id"`
	Lines     []lineJSON `json:"lines"`
}

type lineJSON struct {
	ID       string          `json:"id"`
	Date     string          `json:"date"`
	DateUser string          `json:"date_user,omitempty"`
	RefNum   string          `json:"refnum"`
	Memo     string          `json:"memo"`
	Amount   decimal.Decimal `json:"amount"`
}

func newConvertCommand() *cobra.Command {
	var (
		locale string
		brief  bool
	)

	cmd := &cobra.Command{
		Use:   "convert <export.xlsx>",
		Short: "Parse an SEB export and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := seb.NewParser(seb.Options{Locale: locale, Brief: brief})
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			st, err := parser.Parse(f)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(toStatementJSON(st))
		},
	}

	cmd.Flags().StringVar(&locale, "locale", seb.DefaultLocale, "number format locale for amount cells")
	cmd.Flags().BoolVar(&brief, "brief", false, "strip embedded purchase dates from card memos")

	return cmd
}

func toStatementJSON(st *statement.Statement) statementJSON {
	out := statementJSON{
		BankID:    st.BankID,
		Currency:  st.Currency,
		AccountID: st.AccountID,
		Lines:     make([]lineJSON, 0, len(st.Lines)),
	}

	for _, line := range st.Lines {
		lj := lineJSON{
			ID:     line.ID,
			Date:   line.Date.Format(time.DateOnly),
			RefNum: line.RefNum,
			Memo:   line.Memo,
			Amount: line.Amount,
		}

		if line.DateUser != nil {
			lj.DateUser = line.DateUser.Format(time.DateOnly)
		}

		out.Lines = append(out.Lines, lj)
	}

	return out
}
