package learn

import (
	"sort"
	"strings"
)

// CheckChoice grades a single-select answer: the selected option ID must be
// the one flagged correct.
func CheckChoice(item *Item, optionID string) bool {
	correct := item.CorrectOption()
	return correct != nil && correct.OptionID == optionID
}

// CheckMultiSelect grades a multi-select answer. The selected ID set must
// equal the item's correct set exactly; there is no partial credit. An
// empty selection is a validation error, not a wrong answer.
func CheckMultiSelect(item *Item, optionIDs []string) (bool, error) {
	if len(optionIDs) == 0 {
		return false, ErrEmptySelection
	}
	return equalIDSets(optionIDs, item.CorrectOptionIDs), nil
}

// CheckWritten grades a typed answer by normalized string equality. An
// empty (all-whitespace) input is a validation error, not a wrong answer.
func CheckWritten(item *Item, input string) (bool, error) {
	if strings.TrimSpace(input) == "" {
		return false, ErrEmptyAnswer
	}
	return normalizeText(input) == normalizeText(item.CorrectAnswer), nil
}

// equalIDSets compares two ID slices as sets, ignoring order and duplicates.
func equalIDSets(a, b []string) bool {
	return strings.Join(dedupSorted(a), "\x00") == strings.Join(dedupSorted(b), "\x00")
}

func dedupSorted(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
