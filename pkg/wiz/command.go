package wiz

import "fmt"

// Scene identifies one of the bulb's preset light modes.
type Scene int

// Scene identifiers used by the bulb firmware.
const (
	SceneWarmWhite Scene = 11
	SceneDaylight  Scene = 12
)

// String returns the scene's name, or a numeric placeholder for
// identifiers this package does not recognize.
func (s Scene) String() string {
	switch s {
	case SceneWarmWhite:
		return "warm_white"
	case SceneDaylight:
		return "daylight"
	default:
		return fmt.Sprintf("scene_%d", int(s))
	}
}

// ParseScene maps a scene name to its identifier.
func ParseScene(name string) (Scene, error) {
	switch name {
	case "warm_white":
		return SceneWarmWhite, nil
	case "daylight":
		return SceneDaylight, nil
	default:
		return 0, fmt.Errorf("%w: unknown scene %q", ErrInvalidArgument, name)
	}
}

// Command is a single request datagram payload. Commands are built fresh
// per call and never reused.
type Command struct {
	ID     int            `json:"id,omitempty"`
	Method string         `json:"method"`
	Params map[string]any `json:"params"`
}

// Methods understood by the bulb.
const (
	methodSetState        = "setState"
	methodSetPilot        = "setPilot"
	methodGetPilot        = "getPilot"
	methodGetSystemConfig = "getSystemConfig"
)

func setStateCommand(on bool) Command {
	return Command{
		ID:     1,
		Method: methodSetState,
		Params: map[string]any{"state": on},
	}
}

func setPilotCommand(sceneID, dimming int) Command {
	return Command{
		ID:     1,
		Method: methodSetPilot,
		Params: map[string]any{"sceneId": sceneID, "dimming": clampDimming(dimming)},
	}
}

func getPilotCommand() Command {
	return Command{Method: methodGetPilot, Params: map[string]any{}}
}

func getSystemConfigCommand() Command {
	return Command{Method: methodGetSystemConfig, Params: map[string]any{}}
}

// clampDimming bounds a brightness percentage to the device's 0-100 range.
func clampDimming(d int) int {
	if d < 0 {
		return 0
	}
	if d > 100 {
		return 100
	}
	return d
}
