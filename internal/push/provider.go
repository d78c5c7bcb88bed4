package push

import "context"

// Message is a single push notification payload.
type Message struct {
	Title string
	Body  string
	Data  map[string]string
}

// Provider delivers push notifications to device tokens. Delivery is best
// effort; callers must not fail a request on a push error.
type Provider interface {
	Notify(ctx context.Context, tokens []string, msg *Message) error
}
