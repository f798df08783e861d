package importer

import (
	"io"

	"github.com/sebok-dev/sebok/internal/statement"
)

type Bank string

const (
	BankSEB Bank = "seb"
)

// Parser turns one raw export file into a normalized statement.
type Parser interface {
	Parse(r io.Reader) (*statement.Statement, error)
}
