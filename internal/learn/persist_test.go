package learn

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/flashdeck/internal/storage"
)

// recordingLogger captures log lines for assertions.
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, v ...any) {
	l.lines = append(l.lines, format)
}

func TestSessionStore_RoundTrip(t *testing.T) {
	kv := storage.NewMemory()
	ss := NewSessionStore(kv, &recordingLogger{})

	state := builtState(t)
	RecordOutcome(state, state.Items[0].ItemID, OutcomeCorrect)
	RecordOutcome(state, state.Items[1].ItemID, OutcomeSkipped)
	state.QuestionTypeRotation = GenerateRotation([]QuestionType{TypeMultipleChoice, TypeWritten}, 4)
	state.LastTypeUsed = TypeWritten
	state.CurrentIndex = 2
	state.AttemptNumber = 1
	state.MaxProgressPercent = 25
	state.CreatedAt = time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	state.UpdatedAt = time.Date(2026, 8, 1, 10, 5, 0, 0, time.UTC)

	ss.Save(state)
	loaded := ss.Load("set-1", fourCards())
	if loaded == nil {
		t.Fatal("Load returned nil for a freshly saved session")
	}

	if !reflect.DeepEqual(state, loaded) {
		t.Errorf("round-trip mismatch:\nsaved:  %+v\nloaded: %+v", state, loaded)
	}
}

func TestSessionStore_PersistedFieldNames(t *testing.T) {
	kv := storage.NewMemory()
	ss := NewSessionStore(kv, &recordingLogger{})
	ss.Save(builtState(t))

	raw, ok := kv.Get(storage.LearnSessionKey("set-1"))
	if !ok {
		t.Fatal("no record saved")
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, field := range []string{
		"schemaVersion", "setId", "items", "outcomeByItemId", "poolItemIds",
		"currentIndex", "attemptNumber", "maxProgressPercent",
		"questionTypeRotation", "createdAt", "updatedAt",
	} {
		if _, ok := decoded[field]; !ok {
			t.Errorf("persisted record missing field %q", field)
		}
	}
}

func TestSessionStore_LoadMissing(t *testing.T) {
	ss := NewSessionStore(storage.NewMemory(), &recordingLogger{})

	if got := ss.Load("set-1", fourCards()); got != nil {
		t.Errorf("Load missing = %+v, want nil", got)
	}
}

func TestSessionStore_LoadCorrupt(t *testing.T) {
	kv := storage.NewMemory()
	logger := &recordingLogger{}
	ss := NewSessionStore(kv, logger)
	_ = kv.Set(storage.LearnSessionKey("set-1"), "{definitely not json")

	if got := ss.Load("set-1", fourCards()); got != nil {
		t.Errorf("Load corrupt = %+v, want nil", got)
	}
	if len(logger.lines) == 0 {
		t.Error("corrupt session should be logged")
	}
}

func TestSessionStore_LoadSchemaVersionMismatch(t *testing.T) {
	kv := storage.NewMemory()
	ss := NewSessionStore(kv, &recordingLogger{})

	state := builtState(t)
	state.SchemaVersion = "0"
	ss.Save(state)

	if got := ss.Load("set-1", fourCards()); got != nil {
		t.Errorf("Load with stale schema = %+v, want nil", got)
	}
}

func TestSessionStore_LoadSetIDMismatch(t *testing.T) {
	kv := storage.NewMemory()
	ss := NewSessionStore(kv, &recordingLogger{})

	state := builtState(t)
	ss.Save(state)
	// Move the record under another set's key.
	raw, _ := kv.Get(storage.LearnSessionKey("set-1"))
	_ = kv.Set(storage.LearnSessionKey("set-2"), raw)

	if got := ss.Load("set-2", fourCards()); got != nil {
		t.Errorf("Load with mismatched set ID = %+v, want nil", got)
	}
}

func TestSessionStore_LoadCardCountChanged(t *testing.T) {
	kv := storage.NewMemory()
	ss := NewSessionStore(kv, &recordingLogger{})
	ss.Save(builtState(t))

	// A card was added since the session was saved: invalidate wholesale.
	cards := append(fourCards(), fourCards()[0])
	cards[4].ID = "c5"
	if got := ss.Load("set-1", cards); got != nil {
		t.Errorf("Load after card count change = %+v, want nil", got)
	}
}

func TestSessionStore_SaveFailureIsSwallowed(t *testing.T) {
	kv := storage.NewMemory()
	kv.FailWrites = true
	logger := &recordingLogger{}
	ss := NewSessionStore(kv, logger)

	ss.Save(builtState(t)) // must not panic or error out

	if len(logger.lines) != 1 {
		t.Fatalf("logged %d lines, want 1", len(logger.lines))
	}
	if !strings.Contains(logger.lines[0], "save session") {
		t.Errorf("log line = %q, want a save failure", logger.lines[0])
	}
}

func TestSessionStore_Clear(t *testing.T) {
	kv := storage.NewMemory()
	ss := NewSessionStore(kv, &recordingLogger{})
	ss.Save(builtState(t))

	ss.Clear("set-1")

	if got := ss.Load("set-1", fourCards()); got != nil {
		t.Errorf("Load after Clear = %+v, want nil", got)
	}
}
