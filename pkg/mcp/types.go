package mcp

import "github.com/urmzd/wizmcp/pkg/db"

// --- Power Tools ---

// PowerOnInput is the input for the power_on tool
type PowerOnInput struct{}

// PowerOffInput is the input for the power_off tool
type PowerOffInput struct{}

// PowerOutput is the output for the power_on and power_off tools
type PowerOutput struct {
	Success bool   `json:"success" jsonschema:"description=Whether the device acknowledged the command"`
	Message string `json:"message" jsonschema:"description=Status message"`
}

// --- Set Scene Tool ---

// SetSceneInput is the input for the set_scene tool
type SetSceneInput struct {
	Scene      string `json:"scene" jsonschema:"required,description=Scene name (warm_white or daylight)"`
	Brightness *int   `json:"brightness,omitempty" jsonschema:"description=Brightness level 0-100 (default 100)"`
}

// SetSceneOutput is the output for the set_scene tool
type SetSceneOutput struct {
	Success    bool   `json:"success" jsonschema:"description=Whether the device acknowledged the command"`
	Scene      string `json:"scene" jsonschema:"description=Scene that was set"`
	Brightness int    `json:"brightness" jsonschema:"description=Brightness that was set"`
	Message    string `json:"message" jsonschema:"description=Status message"`
}

// --- Adjust Brightness Tool ---

// AdjustBrightnessInput is the input for the adjust_brightness tool
type AdjustBrightnessInput struct {
	Percent int `json:"percent" jsonschema:"required,description=Brightness level 0-100"`
}

// AdjustBrightnessOutput is the output for the adjust_brightness tool
type AdjustBrightnessOutput struct {
	Success    bool   `json:"success" jsonschema:"description=Whether the device acknowledged the command"`
	Brightness int    `json:"brightness" jsonschema:"description=Brightness that was set"`
	Mode       string `json:"mode,omitempty" jsonschema:"description=Color mode that was preserved"`
	SceneID    int    `json:"scene_id" jsonschema:"description=Scene identifier that was preserved"`
	Message    string `json:"message" jsonschema:"description=Status message"`
}

// --- Get Status Tool ---

// GetStatusInput is the input for the get_status tool
type GetStatusInput struct{}

// GetStatusOutput is the output for the get_status tool
type GetStatusOutput struct {
	On         bool   `json:"on" jsonschema:"description=Whether the light is on"`
	Mode       string `json:"mode,omitempty" jsonschema:"description=Color mode label if recognized"`
	SceneID    int    `json:"scene_id" jsonschema:"description=Raw scene identifier reported by the device"`
	Brightness int    `json:"brightness" jsonschema:"description=Current brightness 0-100"`
}

// --- Get Info Tool ---

// GetInfoInput is the input for the get_info tool
type GetInfoInput struct{}

// GetInfoOutput is the output for the get_info tool
type GetInfoOutput struct {
	Info map[string]any `json:"info" jsonschema:"description=Device configuration as reported by the bulb"`
}

// --- Set Pilot Tool ---

// SetPilotInput is the input for the set_pilot tool
type SetPilotInput struct {
	Pilot map[string]any `json:"pilot" jsonschema:"required,description=Pilot properties to set (validated against the pilot schema)"`
}

// SetPilotOutput is the output for the set_pilot tool
type SetPilotOutput struct {
	Success bool           `json:"success" jsonschema:"description=Whether the device acknowledged the command"`
	Pilot   map[string]any `json:"pilot" jsonschema:"description=Pilot properties that were sent"`
}

// --- Get History Tool ---

// GetHistoryInput is the input for the get_history tool
type GetHistoryInput struct {
	Limit *int `json:"limit,omitempty" jsonschema:"description=Maximum number of entries (default 50)"`
}

// GetHistoryOutput is the output for the get_history tool
type GetHistoryOutput struct {
	Exchanges []db.Exchange `json:"exchanges" jsonschema:"description=Recent command exchanges, newest first"`
	Count     int           `json:"count" jsonschema:"description=Number of entries returned"`
}
