package mail

import (
	"context"
	"io"
)

// Message is a channel-agnostic email payload.
type Message struct {
	// From overrides the channel's configured sender when set.
	From string
	// To lists the recipients.
	To []string
	// Cc lists carbon copy recipients.
	Cc []string
	// Bcc lists blind carbon copy recipients.
	Bcc []string
	// Subject is the subject line.
	Subject string
	// TextBody is the plain-text body, used when HTMLBody is empty.
	TextBody string
	// HTMLBody is the optional HTML body.
	HTMLBody string
}

// Mail is an outbound email channel.
type Mail interface {
	io.Closer
	// Send delivers the message through the channel.
	Send(ctx context.Context, msg Message) error
}
