package bridge

import "fmt"

// LightConfiguration is the Home Assistant MQTT discovery payload used to
// register the bulb as a light entity.
type LightConfiguration struct {
	ConfigTopic string `json:"-"`

	Name            string   `json:"name"`
	UniqueID        string   `json:"unique_id"`
	CommandTopic    string   `json:"command_topic"`
	StateTopic      string   `json:"state_topic"`
	Schema          string   `json:"schema"`
	Brightness      bool     `json:"brightness"`
	BrightnessScale int      `json:"brightness_scale"`
	Effect          bool     `json:"effect"`
	EffectList      []string `json:"effect_list,omitempty"`
}

// NewLightConfiguration builds the discovery payload for one bulb. Scenes
// are exposed to Home Assistant as effects.
func NewLightConfiguration(name, uniqueID, topicPrefix string) *LightConfiguration {
	return &LightConfiguration{
		ConfigTopic:     fmt.Sprintf("homeassistant/light/%v/config", uniqueID),
		Name:            name,
		UniqueID:        uniqueID,
		CommandTopic:    fmt.Sprintf("%v/light/%v/set", topicPrefix, uniqueID),
		StateTopic:      fmt.Sprintf("%v/light/%v/state", topicPrefix, uniqueID),
		Schema:          "json",
		Brightness:      true,
		BrightnessScale: 100,
		Effect:          true,
		EffectList:      []string{"warm_white", "daylight"},
	}
}

// LightState is the JSON-schema light payload exchanged with Home
// Assistant, both as published state and as requested state on the
// command topic.
type LightState struct {
	State      string `json:"state"`
	Brightness int    `json:"brightness,omitempty"`
	Effect     string `json:"effect,omitempty"`
}
