package wiz

import (
	"context"
	"fmt"
)

// Status is a point-in-time snapshot of the bulb's pilot. It is re-fetched
// from the device on every read and never cached.
type Status struct {
	On      bool   `json:"on"`
	SceneID int    `json:"scene_id"`
	Mode    string `json:"mode,omitempty"`
	Dimming int    `json:"dimming"`
}

// Bulb exposes intent-level operations against a single bulb, shielding
// callers from the raw command shapes.
type Bulb struct {
	transport *Transport
}

// NewBulb creates a Bulb backed by the given transport.
func NewBulb(transport *Transport) *Bulb {
	return &Bulb{transport: transport}
}

// PowerOn turns the bulb on. The previously active scene and brightness are
// preserved; the bulb resumes whatever pilot it had before it was turned off.
func (b *Bulb) PowerOn(ctx context.Context) error {
	_, err := b.transport.Send(ctx, setStateCommand(true))
	return err
}

// PowerOff turns the bulb off.
func (b *Bulb) PowerOff(ctx context.Context) error {
	_, err := b.transport.Send(ctx, setStateCommand(false))
	return err
}

// SetScene switches the bulb to a preset scene at the given brightness.
// Brightness is clamped to 0-100 before transmission.
func (b *Bulb) SetScene(ctx context.Context, scene Scene, dimming int) error {
	switch scene {
	case SceneWarmWhite, SceneDaylight:
	default:
		return fmt.Errorf("%w: unsupported scene %d", ErrInvalidArgument, int(scene))
	}

	_, err := b.transport.Send(ctx, setPilotCommand(int(scene), dimming))
	return err
}

// AdjustBrightness changes only the bulb's brightness, preserving the
// current scene. The device has no relative-brightness verb, so the current
// sceneId is read first and re-sent with the new dimming value. If the read
// fails the whole operation fails; guessing a scene would silently change
// the user's chosen color.
func (b *Bulb) AdjustBrightness(ctx context.Context, percent int) (Status, error) {
	status, err := b.Status(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("read current pilot: %w", err)
	}
	if !status.On {
		return Status{}, ErrPoweredOff
	}

	percent = clampDimming(percent)
	if _, err := b.transport.Send(ctx, setPilotCommand(status.SceneID, percent)); err != nil {
		return Status{}, err
	}

	status.Dimming = percent
	return status, nil
}

// Status fetches the bulb's current pilot.
func (b *Bulb) Status(ctx context.Context) (Status, error) {
	reply, err := b.transport.Send(ctx, getPilotCommand())
	if err != nil {
		return Status{}, err
	}
	return statusFromResult(reply.Result)
}

// Info fetches the bulb's system configuration (module name, firmware
// version, MAC address and similar).
func (b *Bulb) Info(ctx context.Context) (map[string]any, error) {
	reply, err := b.transport.Send(ctx, getSystemConfigCommand())
	if err != nil {
		return nil, err
	}
	if reply.Result == nil {
		return nil, fmt.Errorf("%w: reply has no result", ErrMalformedReply)
	}
	return reply.Result, nil
}

// SetPilot sends a raw pilot write with caller-supplied parameters. Callers
// are expected to validate params against the pilot schema first; only the
// dimming bound is enforced here.
func (b *Bulb) SetPilot(ctx context.Context, params map[string]any) error {
	if len(params) == 0 {
		return fmt.Errorf("%w: empty pilot params", ErrInvalidArgument)
	}
	if v, ok := params["dimming"].(float64); ok {
		params["dimming"] = clampDimming(int(v))
	}

	_, err := b.transport.Send(ctx, Command{ID: 1, Method: methodSetPilot, Params: params})
	return err
}

func statusFromResult(result map[string]any) (Status, error) {
	if result == nil {
		return Status{}, fmt.Errorf("%w: reply has no result", ErrMalformedReply)
	}

	on, ok := result["state"].(bool)
	if !ok {
		return Status{}, fmt.Errorf("%w: missing state field", ErrMalformedReply)
	}

	status := Status{On: on}

	if v, ok := result["sceneId"].(float64); ok {
		status.SceneID = int(v)
		// Unrecognized scene identifiers pass through with no label.
		switch Scene(status.SceneID) {
		case SceneWarmWhite, SceneDaylight:
			status.Mode = Scene(status.SceneID).String()
		}
	}
	if v, ok := result["dimming"].(float64); ok {
		status.Dimming = int(v)
	}

	return status, nil
}
