// homie5-controller - example Homie v5 controller.
//
// Discovers devices on the configured domain, follows the discovery
// lifecycle (state → description → property subscriptions) and logs
// every state, log, alert and value update it sees until interrupted.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
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
const defaultConfigPath = "configs/controller.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// device is the controller's view of one discovered device.
type device struct {
	state       homie5.HomieDeviceStatus
	description *homie5.DeviceDescription
}

// registry tracks discovered devices. Storage is the controller's own
// concern; the protocol only generates the subscriptions.
type registry struct {
	mu      sync.Mutex
	devices map[homie5.DeviceRef]*device
}

func run(ctx context.Context) error {
	log := logging.Default()
	log.Info("starting homie5 example controller", "version", version)

	cfg, err := config.Load(getConfigPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log = logging.New(cfg.Logging, version)

	client, err := mqtt.Connect(cfg.MQTT, nil)
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
		"domain", cfg.Domain(),
	)

	ctrl := homie5.NewControllerProtocol()
	reg := &registry{devices: make(map[homie5.DeviceRef]*device)}

	var handler mqtt.MessageHandler
	handler = func(topic string, payload []byte) error {
		msg, err := homie5.ParseMQTTMessage(topic, payload)
		if err != nil {
			log.Warn("ignoring unparsable message", "topic", topic, "error", err)
			return nil
		}
		return handleMessage(ctrl, reg, client, log, handler, msg)
	}

	// Discovery step 1: watch every device's $state on the domain.
	if err := client.SubscribeAll(ctrl.DiscoverDevices(cfg.Domain()), handler); err != nil {
		return fmt.Errorf("starting discovery: %w", err)
	}
	if err := client.SubscribeAll(ctrl.SubscribeBroadcast(cfg.Domain()), handler); err != nil {
		return fmt.Errorf("subscribing broadcasts: %w", err)
	}
	log.Info("discovery started")

	<-ctx.Done()

	log.Info("homie5 example controller stopped")
	return nil
}

// handleMessage advances the discovery lifecycle for the affected device
// and logs everything else.
func handleMessage(ctrl *homie5.ControllerProtocol, reg *registry, client *mqtt.Client,
	log *logging.Logger, handler mqtt.MessageHandler, msg homie5.Message) error {

	switch m := msg.(type) {
	case homie5.DeviceStateMessage:
		reg.mu.Lock()
		known, exists := reg.devices[m.Device]
		if exists {
			known.state = m.State
		} else {
			reg.devices[m.Device] = &device{state: m.State}
		}
		reg.mu.Unlock()

		if exists {
			log.Info("device state update", "device", m.Device.Topic(), "state", m.State)
			return nil
		}

		// Discovery step 2: new device, subscribe its attributes to
		// obtain the description.
		log.Info("device discovered", "device", m.Device.Topic(), "state", m.State)
		return client.SubscribeAll(ctrl.SubscribeDevice(m.Device), handler)

	case homie5.DeviceDescriptionMessage:
		reg.mu.Lock()
		known, exists := reg.devices[m.Device]
		var old *homie5.DeviceDescription
		if exists {
			old = known.description
			known.description = m.Description
		}
		reg.mu.Unlock()

		if !exists {
			log.Warn("description for unknown device", "device", m.Device.Topic())
			return nil
		}

		// A changed description means the property set may have changed;
		// drop the old subscriptions before installing the new ones.
		if old != nil {
			if err := client.UnsubscribeAll(ctrl.UnsubscribeProps(m.Device, old)); err != nil {
				return err
			}
		}

		// Discovery step 3: subscribe to all property values and targets.
		log.Info("device description received",
			"device", m.Device.Topic(),
			"version", m.Description.Version,
		)
		return client.SubscribeAll(ctrl.SubscribeProps(m.Device, m.Description), handler)

	case homie5.DeviceRemovalMessage:
		reg.mu.Lock()
		known, exists := reg.devices[m.Device]
		delete(reg.devices, m.Device)
		reg.mu.Unlock()

		log.Info("device removed", "device", m.Device.Topic())
		if exists {
			if err := client.UnsubscribeAll(ctrl.UnsubscribeDevice(m.Device)); err != nil {
				return err
			}
			if known.description != nil {
				return client.UnsubscribeAll(ctrl.UnsubscribeProps(m.Device, known.description))
			}
		}
		return nil

	case homie5.PropertyValueMessage:
		log.Info("property value", "property", m.Property.Topic(), "value", m.Value)
	case homie5.PropertyTargetMessage:
		log.Info("property target", "property", m.Property.Topic(), "target", m.Target)
	case homie5.DeviceLogMessage:
		log.Info("device log", "device", m.Device.Topic(), "level", m.Level, "message", m.Message)
	case homie5.DeviceAlertMessage:
		log.Info("device alert", "device", m.Device.Topic(), "alert", m.AlertID, "message", m.Message)
	case homie5.BroadcastMessage:
		log.Info("broadcast", "subtopic", m.Subtopic, "data", m.Data)
	}
	return nil
}

// getConfigPath returns the configuration file path.
// Uses HOMIE5_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("HOMIE5_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
