package wiz

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func decodeSent(t *testing.T, raw []byte) (string, map[string]any) {
	t.Helper()

	var cmd struct {
		Method string         `json:"method"`
		Params map[string]any `json:"params"`
	}
	if err := json.Unmarshal(raw, &cmd); err != nil {
		t.Fatalf("sent datagram is not a command: %v", err)
	}
	return cmd.Method, cmd.Params
}

func TestAdjustBrightnessPreservesScene(t *testing.T) {
	f := newFakeBulb(t,
		[]byte(`{"method":"getPilot","result":{"state":true,"sceneId":11,"dimming":80}}`),
		[]byte(`{"method":"setPilot","result":{"success":true}}`),
	)
	bulb := NewBulb(f.transport(time.Second))

	status, err := bulb.AdjustBrightness(context.Background(), 30)
	if err != nil {
		t.Fatalf("AdjustBrightness failed: %v", err)
	}

	if status.SceneID != 11 || status.Mode != "warm_white" {
		t.Errorf("expected warm_white scene preserved, got %+v", status)
	}
	if status.Dimming != 30 {
		t.Errorf("expected dimming 30, got %d", status.Dimming)
	}

	sent := f.sent()
	if len(sent) != 2 {
		t.Fatalf("expected getPilot then setPilot, got %d datagrams", len(sent))
	}

	method, params := decodeSent(t, sent[1])
	if method != "setPilot" {
		t.Errorf("expected second command setPilot, got %q", method)
	}
	if params["sceneId"] != float64(11) {
		t.Errorf("sceneId changed: got %v, want 11", params["sceneId"])
	}
	if params["dimming"] != float64(30) {
		t.Errorf("expected dimming 30, got %v", params["dimming"])
	}
}

func TestAdjustBrightnessClampsPercent(t *testing.T) {
	f := newFakeBulb(t,
		[]byte(`{"result":{"state":true,"sceneId":12,"dimming":50}}`),
		[]byte(`{"result":{"success":true}}`),
	)
	bulb := NewBulb(f.transport(time.Second))

	status, err := bulb.AdjustBrightness(context.Background(), 150)
	if err != nil {
		t.Fatalf("AdjustBrightness failed: %v", err)
	}
	if status.Dimming != 100 {
		t.Errorf("expected clamp to 100, got %d", status.Dimming)
	}

	_, params := decodeSent(t, f.sent()[1])
	if params["dimming"] != float64(100) {
		t.Errorf("expected transmitted dimming 100, got %v", params["dimming"])
	}
}

func TestAdjustBrightnessAbortsOnFailedRead(t *testing.T) {
	f := newFakeBulb(t) // status query gets no reply
	bulb := NewBulb(f.transport(100 * time.Millisecond))

	_, err := bulb.AdjustBrightness(context.Background(), 40)
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout from status read, got %v", err)
	}

	// The write must never be attempted after a failed read.
	sent := f.sent()
	if len(sent) != 1 {
		t.Fatalf("expected only the getPilot datagram, got %d", len(sent))
	}
	if method, _ := decodeSent(t, sent[0]); method != "getPilot" {
		t.Errorf("expected getPilot, got %q", method)
	}
}

func TestAdjustBrightnessRefusesWhenOff(t *testing.T) {
	f := newFakeBulb(t, []byte(`{"result":{"state":false,"sceneId":11,"dimming":80}}`))
	bulb := NewBulb(f.transport(time.Second))

	_, err := bulb.AdjustBrightness(context.Background(), 40)
	if !errors.Is(err, ErrPoweredOff) {
		t.Fatalf("expected ErrPoweredOff, got %v", err)
	}

	if len(f.sent()) != 1 {
		t.Error("no setPilot must be sent when the light is off")
	}
}

func TestStatusDecodesReply(t *testing.T) {
	f := newFakeBulb(t, []byte(`{"method":"getPilot","env":"pro","result":{"state":true,"sceneId":12,"dimming":55}}`))
	bulb := NewBulb(f.transport(time.Second))

	status, err := bulb.Status(context.Background())
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}

	if !status.On {
		t.Error("expected on=true")
	}
	if status.Mode != "daylight" {
		t.Errorf("expected mode daylight, got %q", status.Mode)
	}
	if status.Dimming != 55 {
		t.Errorf("expected brightness 55, got %d", status.Dimming)
	}
}

func TestStatusUnknownSceneIsOpaque(t *testing.T) {
	f := newFakeBulb(t, []byte(`{"result":{"state":true,"sceneId":27,"dimming":10}}`))
	bulb := NewBulb(f.transport(time.Second))

	status, err := bulb.Status(context.Background())
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}

	if status.SceneID != 27 {
		t.Errorf("expected sceneId 27 passed through, got %d", status.SceneID)
	}
	if status.Mode != "" {
		t.Errorf("unknown scene must not be labeled, got %q", status.Mode)
	}
}

func TestStatusRejectsReplyWithoutState(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"no result", `{"method":"getPilot"}`},
		{"missing state", `{"result":{"sceneId":11,"dimming":80}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeBulb(t, []byte(tt.reply))
			bulb := NewBulb(f.transport(time.Second))

			_, err := bulb.Status(context.Background())
			if !errors.Is(err, ErrMalformedReply) {
				t.Errorf("expected ErrMalformedReply, got %v", err)
			}
		})
	}
}

func TestSetSceneBuildsCorrectCommand(t *testing.T) {
	f := newFakeBulb(t, []byte(`{"result":{"success":true}}`))
	bulb := NewBulb(f.transport(time.Second))

	if err := bulb.SetScene(context.Background(), SceneDaylight, 65); err != nil {
		t.Fatalf("SetScene failed: %v", err)
	}

	method, params := decodeSent(t, f.sent()[0])
	if method != "setPilot" {
		t.Errorf("expected setPilot, got %q", method)
	}
	if params["sceneId"] != float64(12) || params["dimming"] != float64(65) {
		t.Errorf("unexpected params: %v", params)
	}
}

func TestSetSceneRejectsUnsupportedScene(t *testing.T) {
	f := newFakeBulb(t)
	bulb := NewBulb(f.transport(time.Second))

	err := bulb.SetScene(context.Background(), Scene(99), 50)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if len(f.sent()) != 0 {
		t.Error("no datagram must be sent for a rejected scene")
	}
}

func TestInfoReturnsResult(t *testing.T) {
	f := newFakeBulb(t, []byte(`{"method":"getSystemConfig","result":{"mac":"a8bb50d46a1c","moduleName":"ESP01_SHRGB_03","fwVersion":"1.25.0"}}`))
	bulb := NewBulb(f.transport(time.Second))

	info, err := bulb.Info(context.Background())
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}

	if info["moduleName"] != "ESP01_SHRGB_03" {
		t.Errorf("unexpected info: %v", info)
	}

	if method, _ := decodeSent(t, f.sent()[0]); method != "getSystemConfig" {
		t.Errorf("expected getSystemConfig, got %q", method)
	}
}

func TestSetPilotClampsDimming(t *testing.T) {
	f := newFakeBulb(t, []byte(`{"result":{"success":true}}`))
	bulb := NewBulb(f.transport(time.Second))

	err := bulb.SetPilot(context.Background(), map[string]any{"temp": float64(4200), "dimming": float64(130)})
	if err != nil {
		t.Fatalf("SetPilot failed: %v", err)
	}

	_, params := decodeSent(t, f.sent()[0])
	if params["dimming"] != float64(100) {
		t.Errorf("expected dimming clamped to 100, got %v", params["dimming"])
	}
	if params["temp"] != float64(4200) {
		t.Errorf("expected temp passed through, got %v", params["temp"])
	}
}

func TestSetPilotRejectsEmptyParams(t *testing.T) {
	f := newFakeBulb(t)
	bulb := NewBulb(f.transport(time.Second))

	err := bulb.SetPilot(context.Background(), map[string]any{})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
