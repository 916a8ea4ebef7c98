package bridge

import (
	"testing"

	"github.com/urmzd/wizmcp/pkg/wiz"
)

func TestStatusToLightState(t *testing.T) {
	tests := []struct {
		name   string
		status wiz.Status
		want   LightState
	}{
		{
			name:   "on with scene",
			status: wiz.Status{On: true, SceneID: 11, Mode: "warm_white", Dimming: 80},
			want:   LightState{State: "ON", Brightness: 80, Effect: "warm_white"},
		},
		{
			name:   "off drops brightness and effect",
			status: wiz.Status{On: false, SceneID: 12, Mode: "daylight", Dimming: 55},
			want:   LightState{State: "OFF"},
		},
		{
			name:   "unknown scene has no effect label",
			status: wiz.Status{On: true, SceneID: 27, Dimming: 10},
			want:   LightState{State: "ON", Brightness: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusToLightState(tt.status); *got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewLightConfigurationTopics(t *testing.T) {
	cfg := NewLightConfiguration("WiZ Bulb", "wiz_bulb", "wizmcp")

	if cfg.ConfigTopic != "homeassistant/light/wiz_bulb/config" {
		t.Errorf("unexpected config topic %q", cfg.ConfigTopic)
	}
	if cfg.CommandTopic != "wizmcp/light/wiz_bulb/set" {
		t.Errorf("unexpected command topic %q", cfg.CommandTopic)
	}
	if cfg.StateTopic != "wizmcp/light/wiz_bulb/state" {
		t.Errorf("unexpected state topic %q", cfg.StateTopic)
	}
	if cfg.Schema != "json" || !cfg.Brightness || cfg.BrightnessScale != 100 {
		t.Errorf("unexpected light configuration %+v", cfg)
	}
}
