package schema

import "testing"

func TestValidatePilot_SceneWrite(t *testing.T) {
	v := NewValidator()

	err := v.ValidatePilot(map[string]any{
		"sceneId": float64(11),
		"dimming": float64(80),
	})
	if err != nil {
		t.Errorf("expected valid payload, got: %v", err)
	}
}

func TestValidatePilot_TemperatureWrite(t *testing.T) {
	v := NewValidator()

	err := v.ValidatePilot(map[string]any{
		"temp":    float64(4200),
		"dimming": float64(50),
	})
	if err != nil {
		t.Errorf("expected valid payload, got: %v", err)
	}
}

func TestValidatePilot_ColorWrite(t *testing.T) {
	v := NewValidator()

	err := v.ValidatePilot(map[string]any{
		"r": float64(255),
		"g": float64(120),
		"b": float64(0),
	})
	if err != nil {
		t.Errorf("expected valid payload, got: %v", err)
	}
}

func TestValidatePilot_OutOfRangeDimming(t *testing.T) {
	v := NewValidator()

	err := v.ValidatePilot(map[string]any{
		"dimming": float64(130),
	})
	if err == nil {
		t.Error("expected validation error for out-of-range dimming")
	}
}

func TestValidatePilot_UnknownProperty(t *testing.T) {
	v := NewValidator()

	err := v.ValidatePilot(map[string]any{
		"sceneId": float64(11),
		"unknown": "value",
	})
	if err == nil {
		t.Error("expected validation error for unknown property")
	}
}

func TestValidatePilot_WrongType(t *testing.T) {
	v := NewValidator()

	err := v.ValidatePilot(map[string]any{
		"dimming": "not_a_number",
	})
	if err == nil {
		t.Error("expected validation error for wrong type")
	}
}

func TestValidatePilot_EmptyPayload(t *testing.T) {
	v := NewValidator()

	err := v.ValidatePilot(map[string]any{})
	if err == nil {
		t.Error("expected validation error for empty payload")
	}
}

func TestValidatePilot_TemperatureBelowRange(t *testing.T) {
	v := NewValidator()

	err := v.ValidatePilot(map[string]any{
		"temp": float64(1000),
	})
	if err == nil {
		t.Error("expected validation error for out-of-range temperature")
	}
}

func TestValidatePilot_ReusesCompiledSchema(t *testing.T) {
	v := NewValidator()

	if err := v.ValidatePilot(map[string]any{"sceneId": float64(11)}); err != nil {
		t.Fatal(err)
	}
	if err := v.ValidatePilot(map[string]any{"sceneId": float64(12)}); err != nil {
		t.Fatal(err)
	}

	if v.compiled == nil {
		t.Error("expected compiled schema to be cached")
	}
}
