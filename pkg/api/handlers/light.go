package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urmzd/wizmcp/pkg/api/types"
	"github.com/urmzd/wizmcp/pkg/wiz"
	"github.com/urmzd/wizmcp/pkg/wiz/schema"
)

// LightHandler handles bulb control endpoints
type LightHandler struct {
	bulb      *wiz.Bulb
	validator *schema.Validator
}

// NewLightHandler creates a new light handler
func NewLightHandler(bulb *wiz.Bulb, validator *schema.Validator) *LightHandler {
	return &LightHandler{bulb: bulb, validator: validator}
}

// GetStatus handles GET /light
// @Summary      Get light status
// @Description  Returns the bulb's current power state, color mode, and brightness
// @Tags         light
// @Produce      json
// @Success      200  {object}  types.StatusResponse
// @Failure      502  {object}  types.ErrorResponse  "Device replied with unexpected data"
// @Failure      504  {object}  types.ErrorResponse  "Device did not reply in time"
// @Router       /light [get]
func (h *LightHandler) GetStatus(c *gin.Context) {
	status, err := h.bulb.Status(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.StatusResponse{
		On:         status.On,
		Mode:       status.Mode,
		SceneID:    status.SceneID,
		Brightness: status.Dimming,
		Timestamp:  time.Now(),
	})
}

// GetInfo handles GET /light/info
// @Summary      Get device info
// @Description  Returns the bulb's system configuration
// @Tags         light
// @Produce      json
// @Success      200  {object}  types.InfoResponse
// @Failure      502  {object}  types.ErrorResponse  "Device replied with unexpected data"
// @Failure      504  {object}  types.ErrorResponse  "Device did not reply in time"
// @Router       /light/info [get]
func (h *LightHandler) GetInfo(c *gin.Context) {
	info, err := h.bulb.Info(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.InfoResponse{Info: info})
}

// SetPower handles POST /light/power
// @Summary      Turn the light on or off
// @Tags         light
// @Accept       json
// @Produce      json
// @Param        request  body      types.PowerRequest  true  "Desired power state"
// @Success      200      {object}  types.AckResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      504      {object}  types.ErrorResponse  "Device did not reply in time"
// @Router       /light/power [post]
func (h *LightHandler) SetPower(c *gin.Context) {
	var req types.PowerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Body must contain an \"on\" boolean",
		})
		return
	}

	var err error
	status := "off"
	if *req.On {
		err = h.bulb.PowerOn(c.Request.Context())
		status = "on"
	} else {
		err = h.bulb.PowerOff(c.Request.Context())
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.AckResponse{Status: status})
}

// SetScene handles POST /light/scene
// @Summary      Set a preset scene
// @Description  Switches the bulb to warm_white or daylight, optionally at a given brightness
// @Tags         light
// @Accept       json
// @Produce      json
// @Param        request  body      types.SceneRequest  true  "Scene and optional brightness"
// @Success      200      {object}  types.AckResponse
// @Failure      400      {object}  types.ErrorResponse  "Unknown scene"
// @Failure      504      {object}  types.ErrorResponse  "Device did not reply in time"
// @Router       /light/scene [post]
func (h *LightHandler) SetScene(c *gin.Context) {
	var req types.SceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Body must contain a \"scene\" name",
		})
		return
	}

	scene, err := wiz.ParseScene(req.Scene)
	if err != nil {
		writeError(c, err)
		return
	}

	brightness := 100
	if req.Brightness != nil {
		brightness = *req.Brightness
	}

	if err := h.bulb.SetScene(c.Request.Context(), scene, brightness); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.AckResponse{
		Status:     "ok",
		Scene:      scene.String(),
		Brightness: &brightness,
	})
}

// SetBrightness handles POST /light/brightness
// @Summary      Adjust brightness
// @Description  Changes only the brightness, preserving the current color scene
// @Tags         light
// @Accept       json
// @Produce      json
// @Param        request  body      types.BrightnessRequest  true  "Brightness percent"
// @Success      200      {object}  types.AckResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      409      {object}  types.ErrorResponse  "Light is powered off"
// @Failure      504      {object}  types.ErrorResponse  "Device did not reply in time"
// @Router       /light/brightness [post]
func (h *LightHandler) SetBrightness(c *gin.Context) {
	var req types.BrightnessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Body must contain a \"percent\" number",
		})
		return
	}

	status, err := h.bulb.AdjustBrightness(c.Request.Context(), *req.Percent)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.AckResponse{
		Status:     "ok",
		Scene:      status.Mode,
		Brightness: &status.Dimming,
	})
}

// SetPilot handles POST /light/pilot
// @Summary      Raw pilot write
// @Description  Sets the bulb's pilot directly from a free-form JSON object validated against the pilot schema
// @Tags         light
// @Accept       json
// @Produce      json
// @Param        request  body      object  true  "Pilot properties"
// @Success      200      {object}  types.AckResponse
// @Failure      400      {object}  types.ErrorResponse  "Schema validation failed"
// @Failure      504      {object}  types.ErrorResponse  "Device did not reply in time"
// @Router       /light/pilot [post]
func (h *LightHandler) SetPilot(c *gin.Context) {
	var pilot map[string]any
	if err := json.NewDecoder(c.Request.Body).Decode(&pilot); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	if err := h.validator.ValidatePilot(pilot); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	if err := h.bulb.SetPilot(c.Request.Context(), pilot); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.AckResponse{Status: "ok"})
}

// writeError maps a bulb operation failure to an HTTP response, keeping
// the failure kinds distinguishable for API clients.
func writeError(c *gin.Context, err error) {
	var devErr *wiz.DeviceError

	switch {
	case errors.Is(err, wiz.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_argument",
			Message: err.Error(),
		})
	case errors.Is(err, wiz.ErrPoweredOff):
		c.JSON(http.StatusConflict, types.ErrorResponse{
			Error:   "powered_off",
			Message: "Light is currently off; turn it on first",
		})
	case errors.Is(err, wiz.ErrTimeout):
		c.JSON(http.StatusGatewayTimeout, types.ErrorResponse{
			Error:   "timeout",
			Message: "Device did not reply in time",
		})
	case errors.Is(err, wiz.ErrUnreachable):
		c.JSON(http.StatusBadGateway, types.ErrorResponse{
			Error:   "unreachable",
			Message: "Could not reach the device",
		})
	case errors.Is(err, wiz.ErrMalformedReply):
		c.JSON(http.StatusBadGateway, types.ErrorResponse{
			Error:   "malformed_reply",
			Message: "Device replied with unexpected data",
		})
	case errors.As(err, &devErr):
		c.JSON(http.StatusBadGateway, types.ErrorResponse{
			Error:   "device_error",
			Message: devErr.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "device_error",
			Message: err.Error(),
		})
	}
}
