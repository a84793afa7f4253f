package messaging

import (
	"errors"
	"fmt"
	"strings"
)

// Driver names accepted in the messaging.driver config key.
const (
	DriverNATS  = "nats"
	DriverKafka = "kafka"
)

// ErrUnknownDriver reports a driver name outside the supported set.
var ErrUnknownDriver = errors.New("messaging: unknown driver")

// FactoryOptions carries the per-backend configuration. Only the block
// matching the selected driver is read.
type FactoryOptions struct {
	Kafka KafkaConfig
	NATS  NATSConfig
}

// NewFromDriver builds the broker named by driver. NATS is the default
// deployment, Kafka exists for sites that already run one.
func NewFromDriver(driver string, opts FactoryOptions) (Messaging, error) {
	switch strings.TrimSpace(driver) {
	case DriverKafka:
		return NewKafka(opts.Kafka)
	case DriverNATS:
		return NewNATS(opts.NATS)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
}
