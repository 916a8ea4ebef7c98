package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/urmzd/wizmcp/pkg/wiz"
)

func (s *Server) handlePowerOn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.bulb.PowerOn(ctx); err != nil {
		return toolError("turn on light", err), nil
	}

	out := PowerOutput{
		Success: true,
		Message: "Light turned on",
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handlePowerOff(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.bulb.PowerOff(ctx); err != nil {
		return toolError("turn off light", err), nil
	}

	out := PowerOutput{
		Success: true,
		Message: "Light turned off",
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleSetScene(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := requiredString(request, "scene")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	scene, err := wiz.ParseScene(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	brightness := optionalInt(request, "brightness", 100)

	if err := s.bulb.SetScene(ctx, scene, brightness); err != nil {
		return toolError("set scene", err), nil
	}

	out := SetSceneOutput{
		Success:    true,
		Scene:      scene.String(),
		Brightness: clamp(brightness),
		Message:    fmt.Sprintf("Light set to %s at %d%% brightness", scene, clamp(brightness)),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleAdjustBrightness(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	percent, err := requiredInt(request, "percent")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	status, err := s.bulb.AdjustBrightness(ctx, percent)
	if err != nil {
		if errors.Is(err, wiz.ErrPoweredOff) {
			return mcp.NewToolResultError("light is currently off; turn it on first"), nil
		}
		return toolError("adjust brightness", err), nil
	}

	mode := status.Mode
	if mode == "" {
		mode = fmt.Sprintf("scene %d", status.SceneID)
	}

	out := AdjustBrightnessOutput{
		Success:    true,
		Brightness: status.Dimming,
		Mode:       status.Mode,
		SceneID:    status.SceneID,
		Message:    fmt.Sprintf("Brightness set to %d%% while maintaining %s", status.Dimming, mode),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status, err := s.bulb.Status(ctx)
	if err != nil {
		return toolError("get status", err), nil
	}

	out := GetStatusOutput{
		On:         status.On,
		Mode:       status.Mode,
		SceneID:    status.SceneID,
		Brightness: status.Dimming,
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info, err := s.bulb.Info(ctx)
	if err != nil {
		return toolError("get device info", err), nil
	}

	out := GetInfoOutput{Info: info}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleSetPilot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	pilot, ok := args["pilot"].(map[string]any)
	if !ok || len(pilot) == 0 {
		return mcp.NewToolResultError("required parameter \"pilot\" must be a non-empty object"), nil
	}

	if err := s.validator.ValidatePilot(pilot); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("validation error: %s", err)), nil
	}

	if err := s.bulb.SetPilot(ctx, pilot); err != nil {
		return toolError("set pilot", err), nil
	}

	out := SetPilotOutput{
		Success: true,
		Pilot:   pilot,
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.history == nil {
		return mcp.NewToolResultError("command history is not enabled"), nil
	}

	limit := optionalInt(request, "limit", 50)

	exchanges, err := s.history.RecentExchanges(ctx, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read command history: %s", err)), nil
	}

	out := GetHistoryOutput{
		Exchanges: exchanges,
		Count:     len(exchanges),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

// --- helpers ---

// toolError converts a bulb operation failure into a tool error result,
// keeping the transport failure kinds distinguishable for the assistant.
func toolError(op string, err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, wiz.ErrTimeout), errors.Is(err, wiz.ErrUnreachable):
		return mcp.NewToolResultError(fmt.Sprintf("could not reach the device to %s: %s", op, err))
	case errors.Is(err, wiz.ErrMalformedReply):
		return mcp.NewToolResultError(fmt.Sprintf("device replied with unexpected data while trying to %s: %s", op, err))
	default:
		return mcp.NewToolResultError(fmt.Sprintf("failed to %s: %s", op, err))
	}
}

func requiredString(request mcp.CallToolRequest, key string) (string, error) {
	args := request.GetArguments()
	v, ok := args[key]
	if !ok || v == nil {
		return "", fmt.Errorf("required parameter %q is missing", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("parameter %q must be a non-empty string", key)
	}
	return s, nil
}

func requiredInt(request mcp.CallToolRequest, key string) (int, error) {
	args := request.GetArguments()
	v, ok := args[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("required parameter %q is missing", key)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("parameter %q must be a number", key)
	}
	return int(f), nil
}

func optionalInt(request mcp.CallToolRequest, key string, def int) int {
	if v, ok := request.GetArguments()[key]; ok {
		if f, ok := v.(float64); ok {
			return int(f)
		}
	}
	return def
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func formatJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal response: %s"}`, err)
	}
	return string(b)
}
