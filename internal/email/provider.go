package email

// Provider sends transactional mail. Implementations must be safe for
// concurrent use.
type Provider interface {
	// Send delivers a prepared message.
	Send(email *Email) error

	// SendPasswordReset mails the recovery token to an account holder.
	SendPasswordReset(to, name, token string) error

	// SendWelcome greets a newly registered account.
	SendWelcome(to, name string) error

	// Close releases any underlying connection.
	Close() error
}
