package mcp

import "github.com/mark3labs/mcp-go/mcp"

// registerTools registers all MCP tools with the server
func (s *Server) registerTools() {
	// Power on
	s.mcpServer.AddTool(
		mcp.NewTool("power_on",
			mcp.WithDescription("Turn the light on. The previously active color scene and brightness are preserved."),
		),
		s.handlePowerOn,
	)

	// Power off
	s.mcpServer.AddTool(
		mcp.NewTool("power_off",
			mcp.WithDescription("Turn the light off completely."),
		),
		s.handlePowerOff,
	)

	// Set scene
	s.mcpServer.AddTool(
		mcp.NewTool("set_scene",
			mcp.WithDescription("Set the light to a preset color scene, optionally at a specific brightness. Use warm_white for cozy lighting, daylight for bright natural light."),
			mcp.WithString("scene",
				mcp.Required(),
				mcp.Description("Scene name"),
				mcp.Enum("warm_white", "daylight"),
			),
			mcp.WithNumber("brightness",
				mcp.Description("Brightness level 0-100 (default 100)"),
			),
		),
		s.handleSetScene,
	)

	// Adjust brightness
	s.mcpServer.AddTool(
		mcp.NewTool("adjust_brightness",
			mcp.WithDescription("Change only the light's brightness while keeping the current color scene. Use for requests like 'dimmer', 'brighter', 'set to 50%'."),
			mcp.WithNumber("percent",
				mcp.Required(),
				mcp.Description("Brightness level 0-100"),
			),
		),
		s.handleAdjustBrightness,
	)

	// Get status
	s.mcpServer.AddTool(
		mcp.NewTool("get_status",
			mcp.WithDescription("Get the light's current state: on/off, color mode, and brightness."),
		),
		s.handleGetStatus,
	)

	// Get info
	s.mcpServer.AddTool(
		mcp.NewTool("get_info",
			mcp.WithDescription("Get the light's device configuration (model, firmware, MAC address)."),
		),
		s.handleGetInfo,
	)

	// Raw pilot write
	s.mcpServer.AddTool(
		mcp.NewTool("set_pilot",
			mcp.WithDescription("Advanced: set the light's pilot directly. Pass pilot properties validated against the pilot schema (sceneId, dimming, temp, r, g, b, c, w, speed)."),
			mcp.WithObject("pilot",
				mcp.Required(),
				mcp.Description("Pilot properties to set (e.g. {\"temp\": 4200, \"dimming\": 80})"),
			),
		),
		s.handleSetPilot,
	)

	// Command history
	s.mcpServer.AddTool(
		mcp.NewTool("get_history",
			mcp.WithDescription("List recent commands sent to the light and the replies received"),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of entries to return (default 50)"),
			),
		),
		s.handleGetHistory,
	)
}
