// homie5-device - example Homie v5 device.
//
// Publishes a simulated dimmable light (boolean power, integer brightness)
// following the Homie v5 publish sequence, then answers /set commands until
// interrupted. On shutdown it runs the disconnect sequence so controllers
// see a clean "disconnected" state instead of the last-will "lost".
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"github.com/nerrad567/homie5"
	"github.com/nerrad567/homie5/internal/infrastructure/config"
	"github.com/nerrad567/homie5/internal/infrastructure/logging"
	"github.com/nerrad567/homie5/internal/infrastructure/mqtt"
)

// Version information - set at build time via ldflags
var (
	version = "dev"
)

// Default configuration file path
const defaultConfigPath = "configs/device.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// light holds the mutable state of the simulated device.
type light struct {
	mu         sync.Mutex
	power      bool
	brightness int64
}

func run(ctx context.Context) error {
	log := logging.Default()
	log.Info("starting homie5 example device", "version", version)

	cfg, err := config.Load(getConfigPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log = logging.New(cfg.Logging, version)

	proto, will := homie5.NewDeviceProtocol(cfg.Domain(), cfg.DeviceID())
	desc := makeDescription(cfg.Homie.DeviceName)

	client, err := mqtt.Connect(cfg.MQTT, &will)
	if err != nil {
		return fmt.Errorf("connecting to MQTT: %w", err)
	}
	defer func() {
		log.Info("disconnecting from MQTT")
		if closeErr := client.Close(); closeErr != nil {
			log.Error("error closing MQTT", "error", closeErr)
		}
	}()
	client.SetLogger(log.With("component", "mqtt"))
	log.Info("MQTT connected",
		"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
		"device", proto.DeviceRef().Topic(),
	)

	state := &light{}

	// The handler answers /set commands by validating the payload against
	// the description and echoing the accepted value back as the property
	// value (Homie devices confirm state changes by publishing them).
	handler := func(topic string, payload []byte) error {
		msg, err := homie5.ParseMQTTMessage(topic, payload)
		if err != nil {
			log.Warn("ignoring unparsable message", "topic", topic, "error", err)
			return nil
		}
		set, ok := msg.(homie5.PropertySetMessage)
		if !ok {
			return nil
		}
		return handleSet(state, proto, desc, client, log, set)
	}

	// Publish the device following the fixed sequence.
	for _, step := range homie5.DevicePublishSteps() {
		switch step {
		case homie5.StepDeviceStateInit:
			err = client.Publish(proto.PublishState(homie5.StatusInit))
		case homie5.StepDeviceDescription:
			var pub homie5.Publish
			pub, err = proto.PublishDescription(desc)
			if err == nil {
				err = client.Publish(pub)
			}
		case homie5.StepPropertyValues:
			err = publishValues(state, proto, client)
		case homie5.StepSubscribeProperties:
			var subs []homie5.Subscription
			subs, err = proto.SubscribeProps(desc)
			if err == nil {
				err = client.SubscribeAll(subs, handler)
			}
		case homie5.StepDeviceStateReady:
			err = client.Publish(proto.PublishState(homie5.StatusReady))
		}
		if err != nil {
			return fmt.Errorf("publishing device (step %d): %w", step, err)
		}
	}
	log.Info("device published, waiting for set commands")

	<-ctx.Done()

	log.Info("shutdown signal received")

	// Graceful disconnect: announce the state change, then drop the
	// property subscriptions. The broker discards the last will because
	// we disconnect cleanly afterwards.
	for _, step := range homie5.DeviceDisconnectSteps() {
		switch step {
		case homie5.DisconnectState:
			err = client.Publish(proto.PublishState(homie5.StatusDisconnected))
		case homie5.DisconnectUnsubscribeProperties:
			var unsubs []homie5.Unsubscribe
			unsubs, err = proto.UnsubscribeProps(desc)
			if err == nil {
				err = client.UnsubscribeAll(unsubs)
			}
		}
		if err != nil {
			log.Error("disconnect step failed", "step", step, "error", err)
		}
	}

	log.Info("homie5 example device stopped")
	return nil
}

// handleSet applies a validated /set command to the light and publishes
// the resulting property value.
func handleSet(state *light, proto *homie5.DeviceProtocol, desc *homie5.DeviceDescription,
	client *mqtt.Client, log *logging.Logger, set homie5.PropertySetMessage) error {

	var value homie5.HomieValue
	found := desc.WithProperty(set.Property, func(prop *homie5.PropertyDescription) {
		parsed, err := homie5.ParseValue(set.Value, prop)
		if err != nil {
			log.Warn("rejecting set command",
				"property", set.Property.Topic(),
				"value", set.Value,
				"error", err,
			)
			return
		}
		value = parsed
	})
	if !found || value == nil {
		return nil
	}

	state.mu.Lock()
	switch v := value.(type) {
	case homie5.BooleanValue:
		state.power = bool(v)
	case homie5.IntegerValue:
		state.brightness = int64(v)
	}
	state.mu.Unlock()

	log.Info("set command applied",
		"property", set.Property.Topic(),
		"value", value.String(),
	)

	return client.Publish(proto.PublishValue(
		set.Property.NodeID(), set.Property.PropID(), value.String(), true))
}

// publishValues publishes the current value of every property.
func publishValues(state *light, proto *homie5.DeviceProtocol, client *mqtt.Client) error {
	state.mu.Lock()
	power := strconv.FormatBool(state.power)
	brightness := strconv.FormatInt(state.brightness, 10)
	state.mu.Unlock()

	if err := client.Publish(proto.PublishValue("light", "power", power, true)); err != nil {
		return err
	}
	return client.Publish(proto.PublishValue("light", "brightness", brightness, true))
}

// makeDescription builds the description for the simulated light.
func makeDescription(name string) *homie5.DeviceDescription {
	if name == "" {
		name = "Example light"
	}
	return homie5.NewDeviceDescriptionBuilder().
		Name(name).
		AddNode("light", homie5.NewNodeDescriptionBuilder().
			Name("Light").
			AddProperty("power", homie5.NewPropertyDescriptionBuilder(homie5.DataTypeBoolean).
				Name("Power").
				Format(homie5.BooleanFormat{FalseLabel: "off", TrueLabel: "on"}).
				Settable(true).
				Build()).
			AddProperty("brightness", homie5.NewPropertyDescriptionBuilder(homie5.DataTypeInteger).
				Name("Brightness").
				Format(homie5.IntegerRange{Min: intPtr(0), Max: intPtr(100)}).
				Unit(homie5.UnitPercent).
				Settable(true).
				Build()).
			Build()).
		Build()
}

func intPtr(v int64) *int64 { return &v }

// getConfigPath returns the configuration file path.
// Uses HOMIE5_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("HOMIE5_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
