package learn

import "strings"

// normalizeText canonicalizes text for comparison: trim, collapse runs of
// internal whitespace (including newlines) to single spaces, lowercase.
// Used both for distractor dedup and for grading written answers.
func normalizeText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
