package types

import (
	"time"

	"github.com/urmzd/wizmcp/pkg/db"
)

// --- Request DTOs ---

// PowerRequest is the request body for POST /light/power
type PowerRequest struct {
	On *bool `json:"on" binding:"required"`
}

// SceneRequest is the request body for POST /light/scene
type SceneRequest struct {
	Scene      string `json:"scene" binding:"required"`
	Brightness *int   `json:"brightness"`
}

// BrightnessRequest is the request body for POST /light/brightness
type BrightnessRequest struct {
	Percent *int `json:"percent" binding:"required"`
}

// --- Response DTOs ---

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned from GET /health
type HealthResponse struct {
	Status    string    `json:"status"`
	Device    string    `json:"device"`
	Timestamp time.Time `json:"timestamp"`
}

// StatusResponse is returned from GET /light
type StatusResponse struct {
	On         bool      `json:"on"`
	Mode       string    `json:"mode,omitempty"`
	SceneID    int       `json:"scene_id"`
	Brightness int       `json:"brightness"`
	Timestamp  time.Time `json:"timestamp"`
}

// InfoResponse is returned from GET /light/info
type InfoResponse struct {
	Info map[string]any `json:"info"`
}

// AckResponse is returned from state-changing light endpoints
type AckResponse struct {
	Status     string `json:"status"`
	Scene      string `json:"scene,omitempty"`
	Brightness *int   `json:"brightness,omitempty"`
}

// HistoryResponse is returned from GET /history
type HistoryResponse struct {
	Exchanges []db.Exchange `json:"exchanges"`
	Count     int           `json:"count"`
}
