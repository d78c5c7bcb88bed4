package push

import (
	"context"

	"pettime_backend/internal/logger"
)

// LogProvider records pushes instead of delivering them. It stands in until
// an FCM key is provisioned, and serves the test environment.
type LogProvider struct{}

func NewLogProvider() *LogProvider {
	return &LogProvider{}
}

func (p *LogProvider) Notify(ctx context.Context, tokens []string, msg *Message) error {
	logger.CtxInfo(ctx, "push notification (log only)",
		"tokens", len(tokens),
		"title", msg.Title,
		"body", msg.Body,
	)
	return nil
}
