package importer

import (
	"fmt"
	"io"

	"github.com/sebok-dev/sebok/internal/importer/seb"
	"github.com/sebok-dev/sebok/internal/statement"
)

type Service struct {
	sebParser Parser
}

// NewService builds the per-bank parsers from their settings. Bad settings
// (unknown locale, unparseable toggles) fail here, before any file is seen.
func NewService(sebOpts seb.Options) (*Service, error) {
	sebParser, err := seb.NewParser(sebOpts)
	if err != nil {
		return nil, fmt.Errorf("building seb parser: %w", err)
	}

	return &Service{sebParser: sebParser}, nil
}

func (s *Service) Import(bank Bank, r io.Reader) (*statement.Statement, error) {
	var parser Parser

	switch bank {
	case BankSEB:
		parser = s.sebParser
	default:
		return nil, fmt.Errorf("unknown bank: %s", bank)
	}

	return parser.Parse(r)
}
