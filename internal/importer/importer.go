// Package importer turns bulk card files into deck sets. Two formats are
// supported: plain text (one card per line) and a JSON deck document
// validated against a schema before anything is created.
package importer

import (
	"fmt"
	"strings"

	"github.com/abhisek/flashdeck/internal/deck"
)

// ParseText parses line-based card input: `term<TAB>definition`, with
// " - " accepted as a fallback separator. Blank lines and lines starting
// with '#' are skipped. Unparseable lines are collected as errors rather
// than aborting the import, so one bad line doesn't lose the rest.
func ParseText(input string) ([]deck.Card, []error) {
	var cards []deck.Card
	var errs []error

	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		term, definition, ok := splitLine(line)
		if !ok {
			errs = append(errs, fmt.Errorf("line %d: no separator in %q", i+1, trimmed))
			continue
		}
		cards = append(cards, deck.NewCard(term, definition))
	}
	return cards, errs
}

// splitLine splits a card line on tab, falling back to " - ".
func splitLine(line string) (term, definition string, ok bool) {
	if before, after, found := strings.Cut(line, "\t"); found {
		return clean(before), clean(after), true
	}
	if before, after, found := strings.Cut(line, " - "); found {
		return clean(before), clean(after), true
	}
	return "", "", false
}

func clean(s string) string {
	return strings.TrimSpace(s)
}
