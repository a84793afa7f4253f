package messaging

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrUnsupported reports a feature the selected broker does not offer,
// such as delayed delivery on Kafka.
var ErrUnsupported = errors.New("messaging: unsupported operation")

// Messaging is the broker-agnostic client the modules publish and
// consume audit events through.
type Messaging interface {
	io.Closer

	Publisher
	Consumer
}

// Publisher sends messages to a destination, a topic for Kafka or a
// subject for NATS.
type Publisher interface {
	Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error)
}

// Consumer receives messages from a source until the context ends.
type Consumer interface {
	Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error
}

// Handler processes one received message. With auto-ack enabled the
// broker adapter acks on nil and nacks on error; otherwise the handler
// owns the ack.
type Handler func(ctx context.Context, msg Message) error

// OutgoingMessage is a message to be published.
type OutgoingMessage struct {
	// Body is the payload.
	Body []byte

	// Key selects the Kafka partition, ignored by NATS.
	Key []byte

	// Headers allow binary values and duplicate keys.
	Headers []Header

	// Delay defers delivery where the broker supports it.
	Delay time.Duration
}

// Header is one message header.
type Header struct {
	Key   string
	Value []byte
}

// PublishResult carries whatever metadata the broker returned.
type PublishResult struct {
	// MessageID is broker-assigned when available.
	MessageID string

	// Topic, Partition, and Offset are filled by Kafka-like brokers.
	Topic     string
	Partition int32
	Offset    int64

	// Timestamp is when the broker accepted the message.
	Timestamp time.Time
}

// Message is a received message.
type Message interface {
	// Body returns the payload.
	Body() []byte
	// Key returns the partition key when the broker has one.
	Key() []byte
	// Headers returns the message headers.
	Headers() []Header
	// Attributes returns headers flattened to single string values.
	Attributes() map[string]string

	// ID returns the broker message ID when available.
	ID() string
	// Topic returns the topic name when applicable.
	Topic() string
	// Subject returns the subject name when applicable.
	Subject() string
	// Timestamp returns the delivery or receive time.
	Timestamp() time.Time

	// Ack marks the message as processed.
	Ack(ctx context.Context) error
}

// Nackable requests redelivery of a message.
type Nackable interface {
	Nack(ctx context.Context) error
}

// Extendable pushes out a message's ack deadline where supported.
type Extendable interface {
	Extend(ctx context.Context, d time.Duration) error
}

// MetadataCarrier exposes broker-specific metadata such as offsets or
// delivery counts.
type MetadataCarrier interface {
	Metadata() map[string]any
}

// RawCarrier exposes the underlying broker message type.
type RawCarrier interface {
	Raw() any
}
