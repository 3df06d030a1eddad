package email

// Provider is the outbound email boundary. Delivery failures are logged
// by callers, never surfaced to the client.
type Provider interface {
	// Send delivers a message.
	Send(email *Email) error

	// SendWelcome sends the post-registration welcome message.
	SendWelcome(to, name string) error

	// Close releases provider resources.
	Close() error
}
