package learn

import (
	"testing"
)

func builtState(t *testing.T) *SessionState {
	t.Helper()
	state, err := BuildSession("set-1", fourCards())
	if err != nil {
		t.Fatalf("BuildSession: %v", err)
	}
	return state
}

func TestRecordOutcome_Transitions(t *testing.T) {
	tests := []struct {
		name string
		from Outcome
		via  Outcome
		want Outcome
	}{
		{"unseen to correct", OutcomeUnseen, OutcomeCorrect, OutcomeCorrect},
		{"unseen to incorrect", OutcomeUnseen, OutcomeIncorrect, OutcomeIncorrect},
		{"unseen to skipped", OutcomeUnseen, OutcomeSkipped, OutcomeSkipped},
		{"incorrect to correct", OutcomeIncorrect, OutcomeCorrect, OutcomeCorrect},
		{"skipped to correct", OutcomeSkipped, OutcomeCorrect, OutcomeCorrect},
		{"incorrect stays incorrect", OutcomeIncorrect, OutcomeIncorrect, OutcomeIncorrect},
		{"skipped stays skipped", OutcomeSkipped, OutcomeSkipped, OutcomeSkipped},
		{"correct sticks against incorrect", OutcomeCorrect, OutcomeIncorrect, OutcomeCorrect},
		{"correct sticks against skip", OutcomeCorrect, OutcomeSkipped, OutcomeCorrect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := builtState(t)
			itemID := state.Items[0].ItemID
			if tt.from != OutcomeUnseen {
				state.OutcomeByItemID[itemID] = tt.from
			}

			RecordOutcome(state, itemID, tt.via)

			if got := state.Outcome(itemID); got != tt.want {
				t.Errorf("outcome = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecordOutcome_StickyAcrossManyEvents(t *testing.T) {
	state := builtState(t)
	itemID := state.Items[0].ItemID

	RecordOutcome(state, itemID, OutcomeCorrect)
	for _, o := range []Outcome{OutcomeIncorrect, OutcomeSkipped, OutcomeIncorrect, OutcomeSkipped} {
		RecordOutcome(state, itemID, o)
	}

	if got := state.Outcome(itemID); got != OutcomeCorrect {
		t.Errorf("outcome after repeated downgrades = %v, want correct", got)
	}
}

func TestComputeProgress_PercentFloors(t *testing.T) {
	state := builtState(t) // 4 items
	RecordOutcome(state, state.Items[0].ItemID, OutcomeCorrect)

	p := ComputeProgress(state)
	if p.Percent != 25 {
		t.Errorf("Percent = %d, want 25", p.Percent)
	}

	RecordOutcome(state, state.Items[1].ItemID, OutcomeCorrect)
	RecordOutcome(state, state.Items[2].ItemID, OutcomeCorrect)
	// 3/4 = 75 exactly; a 7-item check covers flooring.
	p = ComputeProgress(state)
	if p.Correct != 3 || p.Percent != 75 {
		t.Errorf("progress = %+v, want 3 correct at 75%%", p)
	}
}

func TestComputeProgress_Counts(t *testing.T) {
	state := builtState(t)
	RecordOutcome(state, state.Items[0].ItemID, OutcomeCorrect)
	RecordOutcome(state, state.Items[1].ItemID, OutcomeIncorrect)
	RecordOutcome(state, state.Items[2].ItemID, OutcomeSkipped)

	p := ComputeProgress(state)
	if p.Correct != 1 || p.Incorrect != 1 || p.Skipped != 1 || p.Unseen != 1 {
		t.Errorf("progress = %+v, want one of each and one unseen", p)
	}
}

func TestDisplayPercent_Monotonic(t *testing.T) {
	state := builtState(t)
	for _, item := range state.Items {
		RecordOutcome(state, item.ItemID, OutcomeCorrect)
	}
	if got := DisplayPercent(state); got != 100 {
		t.Fatalf("DisplayPercent = %d, want 100", got)
	}

	// Simulate a later journey where raw progress is lower: the high-water
	// mark keeps the displayed value from regressing.
	state.OutcomeByItemID = map[string]Outcome{
		state.Items[0].ItemID: OutcomeCorrect,
	}
	if got := DisplayPercent(state); got != 100 {
		t.Errorf("DisplayPercent after regression = %d, want 100", got)
	}
}

func TestMistakeItemIDs_ExcludesCorrect(t *testing.T) {
	state := builtState(t)
	RecordOutcome(state, state.Items[0].ItemID, OutcomeCorrect)
	RecordOutcome(state, state.Items[1].ItemID, OutcomeIncorrect)
	RecordOutcome(state, state.Items[2].ItemID, OutcomeSkipped)

	got := state.MistakeItemIDs()
	if len(got) != 2 {
		t.Fatalf("len(mistakes) = %d, want 2", len(got))
	}
	if got[0] != state.Items[1].ItemID || got[1] != state.Items[2].ItemID {
		t.Errorf("mistakes = %v, want items 1 and 2 in item order", got)
	}
}
