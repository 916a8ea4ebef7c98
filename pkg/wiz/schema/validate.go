package schema

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// pilotSchema describes the parameters accepted by a raw pilot write.
// Exactly one light mode is expected per write: a preset scene, a white
// color temperature, or an RGB(CW) color.
const pilotSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"state":   {"type": "boolean"},
		"sceneId": {"type": "integer", "minimum": 1, "maximum": 32},
		"dimming": {"type": "integer", "minimum": 0, "maximum": 100},
		"temp":    {"type": "integer", "minimum": 2200, "maximum": 6500},
		"r":       {"type": "integer", "minimum": 0, "maximum": 255},
		"g":       {"type": "integer", "minimum": 0, "maximum": 255},
		"b":       {"type": "integer", "minimum": 0, "maximum": 255},
		"c":       {"type": "integer", "minimum": 0, "maximum": 255},
		"w":       {"type": "integer", "minimum": 0, "maximum": 255},
		"speed":   {"type": "integer", "minimum": 20, "maximum": 200}
	},
	"additionalProperties": false,
	"minProperties": 1
}`

// Validator validates raw pilot parameters against the pilot schema.
// The schema is compiled once and reused.
type Validator struct {
	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

// NewValidator creates a new Validator. Compilation is deferred to the
// first validation.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePilot validates params as a raw setPilot payload.
// Returns nil if valid, or an error describing the validation failures.
func (v *Validator) ValidatePilot(params map[string]any) error {
	compiled, err := v.compile()
	if err != nil {
		return fmt.Errorf("failed to compile pilot schema: %w", err)
	}

	return compiled.Validate(params)
}

func (v *Validator) compile() (*jsonschema.Schema, error) {
	v.once.Do(func() {
		var schemaMap any
		if err := json.Unmarshal([]byte(pilotSchema), &schemaMap); err != nil {
			v.err = fmt.Errorf("failed to unmarshal schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("pilot.json", schemaMap); err != nil {
			v.err = fmt.Errorf("failed to add resource: %w", err)
			return
		}
		v.compiled, v.err = c.Compile("pilot.json")
	})

	return v.compiled, v.err
}
