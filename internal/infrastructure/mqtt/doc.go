// Package mqtt carries homie5 boundary records to an MQTT broker.
//
// This package manages:
//   - Connection to the broker with auto-reconnect
//   - Registering the device last will ($state = "lost")
//   - Publishing homie5.Publish records with QoS guarantees
//   - Subscribing homie5.Subscription records with wildcard support
//   - Connection health monitoring
//
// # Architecture
//
// The homie5 root package is pure: it turns protocol operations into
// Publish/Subscription/Unsubscribe/LastWill values and never touches the
// network. This package is the side-effecting adapter the demo binaries
// use to execute those values against a real broker.
//
//	homie5 core (pure) → boundary records → mqtt adapter → broker
//
// # Security Considerations
//
//   - TLS is recommended for production deployments (cfg.Broker.TLS=true)
//   - Credentials are validated against broker ACL
//   - Anonymous access is only for local development
//
// # Usage
//
//	proto, will := homie5.NewDeviceProtocol(domain, deviceID)
//	client, err := mqtt.Connect(cfg.MQTT, &will)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	client.Publish(proto.PublishState(homie5.StatusInit))
package mqtt
