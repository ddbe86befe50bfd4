package learn

// Progress aggregates outcome counts over the full item set.
type Progress struct {
	Correct   int
	Incorrect int
	Skipped   int
	Unseen    int

	// Percent is floor(Correct / total items * 100).
	Percent int
}

// RecordOutcome applies an outcome transition for an item. Once an item is
// correct it stays correct: a later wrong answer or skip on a retry of an
// already-correct item must not downgrade it. Returns the outcome actually
// recorded after the sticky rule.
func RecordOutcome(state *SessionState, itemID string, outcome Outcome) Outcome {
	if state.OutcomeByItemID == nil {
		state.OutcomeByItemID = make(map[string]Outcome)
	}
	if state.Outcome(itemID) == OutcomeCorrect {
		return OutcomeCorrect
	}
	state.OutcomeByItemID[itemID] = outcome

	if p := ComputeProgress(state); p.Percent > state.MaxProgressPercent {
		state.MaxProgressPercent = p.Percent
	}
	return outcome
}

// ComputeProgress tallies outcomes over every item in the session.
func ComputeProgress(state *SessionState) Progress {
	var p Progress
	for i := range state.Items {
		switch state.Outcome(state.Items[i].ItemID) {
		case OutcomeCorrect:
			p.Correct++
		case OutcomeIncorrect:
			p.Incorrect++
		case OutcomeSkipped:
			p.Skipped++
		default:
			p.Unseen++
		}
	}
	if len(state.Items) > 0 {
		p.Percent = p.Correct * 100 / len(state.Items)
	}
	return p
}

// DisplayPercent is the progress shown to the user: the raw percent floored
// at the monotonic high-water mark, so the bar never moves backwards even
// when a retry attempt temporarily has a lower raw ratio.
func DisplayPercent(state *SessionState) int {
	p := ComputeProgress(state)
	if state.MaxProgressPercent > p.Percent {
		return state.MaxProgressPercent
	}
	return p.Percent
}
