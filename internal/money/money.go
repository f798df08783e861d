// Package money parses localized decimal strings into exact decimal values.
//
// The locale is an explicit argument rather than process-global state, so
// concurrent parsers with different locales are safe.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// ErrUnknownLocale is returned when a locale identifier cannot be resolved
// to a known separator convention.
var ErrUnknownLocale = errors.New("unknown locale")

// separators holds the numeric formatting convention of a locale.
type separators struct {
	decimal rune
	group   rune
}

// localeSeparators maps base languages to their separator convention.
// Space-grouped locales accept regular, no-break and narrow no-break spaces.
var localeSeparators = map[string]separators{
	"sv": {decimal: ',', group: ' '},
	"fi": {decimal: ',', group: ' '},
	"nb": {decimal: ',', group: ' '},
	"no": {decimal: ',', group: ' '},
	"fr": {decimal: ',', group: ' '},
	"da": {decimal: ',', group: '.'},
	"de": {decimal: ',', group: '.'},
	"nl": {decimal: ',', group: '.'},
	"pt": {decimal: ',', group: '.'},
	"es": {decimal: ',', group: '.'},
	"en": {decimal: '.', group: ','},
}

// spaceVariants are the characters treated as a space group separator.
const spaceVariants = "   "

// ParseDecimal parses s using the decimal and group separators of the given
// locale. The locale accepts POSIX (`sv_SE`) and BCP-47 (`sv-SE`) spellings.
// Unresolvable locales fail with ErrUnknownLocale.
func ParseDecimal(locale, s string) (decimal.Decimal, error) {
	sep, err := separatorsFor(locale)
	if err != nil {
		return decimal.Decimal{}, err
	}

	clean := strings.TrimSpace(s)

	if sep.group == ' ' {
		for _, sp := range spaceVariants {
			clean = strings.ReplaceAll(clean, string(sp), "")
		}
	} else {
		clean = strings.ReplaceAll(clean, string(sep.group), "")
	}

	if sep.decimal != '.' {
		clean = strings.ReplaceAll(clean, string(sep.decimal), ".")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing %q as %s decimal: %w", s, locale, err)
	}

	return d, nil
}

// separatorsFor resolves a locale identifier to its separator convention.
func separatorsFor(locale string) (separators, error) {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return separators{}, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}

	base, _ := tag.Base()

	sep, ok := localeSeparators[base.String()]
	if !ok {
		return separators{}, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}

	return sep, nil
}

// Resolve checks that a locale identifier is supported. Parsers call this at
// construction so a bad locale fails fast instead of on the first row.
func Resolve(locale string) error {
	_, err := separatorsFor(locale)
	return err
}
