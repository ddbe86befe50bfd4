package learn

import (
	"encoding/json"

	"github.com/abhisek/flashdeck/internal/storage"
)

// SettingsSchemaVersion guards the persisted settings shape.
const SettingsSchemaVersion = 1

// QuestionTypeSettings holds which question types the user enabled.
type QuestionTypeSettings struct {
	MultipleChoice bool `json:"mcqEnabled"`
	MultiSelect    bool `json:"multiSelectEnabled"`
	Written        bool `json:"writtenEnabled"`
}

// OptionSettings holds session behavior toggles.
type OptionSettings struct {
	ShuffleQuestions bool `json:"shuffleQuestions"`
	SoundEffects     bool `json:"soundEffects"`
}

// Settings are the per-set learn preferences. They persist independently of
// session state: clearing a session keeps the settings.
type Settings struct {
	SchemaVersion int                  `json:"schemaVersion"`
	QuestionTypes QuestionTypeSettings `json:"questionTypes"`
	Options       OptionSettings       `json:"options"`
}

// DefaultSettings returns the fallback settings: multiple choice only,
// everything else off.
func DefaultSettings() Settings {
	return Settings{
		SchemaVersion: SettingsSchemaVersion,
		QuestionTypes: QuestionTypeSettings{MultipleChoice: true},
	}
}

// EnabledTypes returns the enabled question types in canonical order.
func (s Settings) EnabledTypes() []QuestionType {
	var types []QuestionType
	if s.QuestionTypes.MultipleChoice {
		types = append(types, TypeMultipleChoice)
	}
	if s.QuestionTypes.MultiSelect {
		types = append(types, TypeMultiSelect)
	}
	if s.QuestionTypes.Written {
		types = append(types, TypeWritten)
	}
	return types
}

// LoadSettings reads a set's settings, falling back to defaults on missing,
// corrupt or version-mismatched data.
func LoadSettings(kv storage.KV, setID string) Settings {
	raw, ok := kv.Get(storage.LearnSettingsKey(setID))
	if !ok {
		return DefaultSettings()
	}
	var s Settings
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return DefaultSettings()
	}
	if s.SchemaVersion != SettingsSchemaVersion {
		return DefaultSettings()
	}
	return s
}

// SaveSettings persists a set's settings. Best-effort like session saves.
func SaveSettings(kv storage.KV, setID string, s Settings, logger Logger) {
	if logger == nil {
		logger = stdLogger{}
	}
	s.SchemaVersion = SettingsSchemaVersion
	data, err := json.Marshal(s)
	if err != nil {
		logger.Printf("learn: marshal settings for set %s: %v", setID, err)
		return
	}
	if err := kv.Set(storage.LearnSettingsKey(setID), string(data)); err != nil {
		logger.Printf("learn: save settings for set %s: %v", setID, err)
	}
}
