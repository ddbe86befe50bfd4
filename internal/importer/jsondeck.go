package importer

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/flashdeck/internal/deck"
)

// deckSchema describes the accepted JSON deck document shape.
var deckSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"description": map[string]any{
			"type": "string",
		},
		"cards": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"term":       map[string]any{"type": "string"},
					"definition": map[string]any{"type": "string"},
				},
				"required":             []any{"term", "definition"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"title", "cards"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// jsonDeck mirrors the validated document.
type jsonDeck struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Cards       []struct {
		Term       string `json:"term"`
		Definition string `json:"definition"`
	} `json:"cards"`
}

// ParseJSON validates a JSON deck document against the schema and builds a
// set from it. Validation failures name the offending path, so the user
// can fix the file instead of importing half a deck.
func ParseJSON(data []byte) (*deck.Set, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile deck schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("deck document invalid: %w", err)
	}

	var doc jsonDeck
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode deck: %w", err)
	}

	cards := make([]deck.Card, 0, len(doc.Cards))
	for _, c := range doc.Cards {
		cards = append(cards, deck.NewCard(c.Term, c.Definition))
	}

	set := deck.NewSet(doc.Title, cards)
	set.Description = doc.Description
	return set, nil
}

// getCompiledSchema compiles the deck schema once and caches it.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(deckSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://flashdeck-deck.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
