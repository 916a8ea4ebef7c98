package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
	"github.com/urmzd/wizmcp/pkg/config"
	"github.com/urmzd/wizmcp/pkg/wiz"
)

// Bridge mirrors the bulb into Home Assistant over MQTT: it registers the
// bulb via MQTT discovery, republishes the bulb's state on an interval, and
// translates command-topic payloads into bulb operations.
type Bridge struct {
	cfg   config.MQTT
	bulb  *wiz.Bulb
	light *LightConfiguration

	client mqtt.Client

	// Last published state, used to publish only on changes.
	lastState *LightState
}

// New creates a bridge for one bulb.
func New(cfg config.MQTT, bulb *wiz.Bulb) (*Bridge, error) {
	if cfg.Broker == "" {
		return nil, fmt.Errorf("MQTT broker address is required")
	}

	return &Bridge{
		cfg:   cfg,
		bulb:  bulb,
		light: NewLightConfiguration("WiZ Bulb", "wiz_bulb", cfg.TopicPrefix),
	}, nil
}

// Run connects to the broker, registers the bulb, and blocks publishing
// state updates until ctx is cancelled.
func (b *Bridge) Run(ctx context.Context) error {
	opts := mqtt.NewClientOptions().
		AddBroker(b.cfg.Broker).
		SetUsername(b.cfg.Username).
		SetPassword(b.cfg.Password).
		SetAutoReconnect(true).
		SetConnectionLostHandler(func(client mqtt.Client, err error) {
			log.Warn().Err(err).Msg("MQTT connection lost")
		})

	b.client = mqtt.NewClient(opts)
	if t := b.client.Connect(); t.Wait() && t.Error() != nil {
		return fmt.Errorf("MQTT connect: %w", t.Error())
	}
	defer b.client.Disconnect(250)

	if err := b.setupLight(); err != nil {
		return err
	}

	ticker := time.NewTicker(b.cfg.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := b.publishState(ctx); err != nil {
				log.Warn().Err(err).Msg("Failed to publish light state")
			}
		}
	}
}

// setupLight publishes the discovery configuration and subscribes to the
// command topic.
func (b *Bridge) setupLight() error {
	configJSON, err := json.Marshal(b.light)
	if err != nil {
		return fmt.Errorf("marshal light configuration: %w", err)
	}
	if t := b.client.Publish(b.light.ConfigTopic, 0, true, configJSON); t.Wait() && t.Error() != nil {
		return fmt.Errorf("MQTT publish failed: %w", t.Error())
	}

	log.Info().Str("topic", b.light.ConfigTopic).Msg("Registered light with Home Assistant")

	if t := b.client.Subscribe(b.light.CommandTopic, 0, b.handleCommand); t.Wait() && t.Error() != nil {
		return fmt.Errorf("MQTT subscribe failed: %w", t.Error())
	}

	return nil
}

// handleCommand applies an incoming Home Assistant command to the bulb.
func (b *Bridge) handleCommand(client mqtt.Client, msg mqtt.Message) {
	var cmd LightState
	if err := json.Unmarshal(msg.Payload(), &cmd); err != nil {
		log.Warn().Err(err).Str("topic", msg.Topic()).Msg("Dropping malformed command payload")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if cmd.State != "ON" {
		log.Info().Msg("Turning light off")
		if err := b.bulb.PowerOff(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to turn light off")
		}
		return
	}

	switch {
	case cmd.Effect != "":
		scene, err := wiz.ParseScene(cmd.Effect)
		if err != nil {
			log.Warn().Str("effect", cmd.Effect).Msg("Dropping command with unknown effect")
			return
		}
		brightness := cmd.Brightness
		if brightness == 0 {
			brightness = 100
		}
		log.Info().Stringer("scene", scene).Int("brightness", brightness).Msg("Setting scene")
		if err := b.bulb.SetScene(ctx, scene, brightness); err != nil {
			log.Error().Err(err).Msg("Failed to set scene")
		}
	case cmd.Brightness != 0:
		// The bulb refuses brightness writes while off, so turn it on first.
		log.Info().Int("brightness", cmd.Brightness).Msg("Adjusting brightness")
		if err := b.bulb.PowerOn(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to turn light on")
			return
		}
		if _, err := b.bulb.AdjustBrightness(ctx, cmd.Brightness); err != nil {
			log.Error().Err(err).Msg("Failed to adjust brightness")
		}
	default:
		log.Info().Msg("Turning light on")
		if err := b.bulb.PowerOn(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to turn light on")
		}
	}

	// Reflect the change immediately rather than waiting for the ticker.
	if err := b.publishState(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to publish light state")
	}
}

// publishState fetches the bulb's current state and publishes it if it
// changed since the last publish.
func (b *Bridge) publishState(ctx context.Context) error {
	status, err := b.bulb.Status(ctx)
	if err != nil {
		return err
	}

	state := statusToLightState(status)
	if b.lastState != nil && *b.lastState == *state {
		return nil
	}

	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal light state: %w", err)
	}
	if t := b.client.Publish(b.light.StateTopic, 0, true, stateJSON); t.Wait() && t.Error() != nil {
		return fmt.Errorf("MQTT publish failed: %w", t.Error())
	}

	b.lastState = state
	log.Debug().Str("topic", b.light.StateTopic).Msg("Published light state")

	return nil
}

func statusToLightState(status wiz.Status) *LightState {
	state := &LightState{State: "OFF"}
	if status.On {
		state.State = "ON"
		state.Brightness = status.Dimming
		state.Effect = status.Mode
	}
	return state
}
