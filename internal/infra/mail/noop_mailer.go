// Package mail holds the outbound email collaborator. Actual delivery is out of
// scope for this service; the implementation here only records the handoff.
package mail

import (
	"context"
	"log/slog"

	"gatekeeper/internal/domain/service"
)

// noopMailer accepts an address and a confirmation link and logs them instead
// of delivering. Swap in a real provider-backed implementation behind the same
// interface when delivery is wired up.
type noopMailer struct {
	logger *slog.Logger
}

// NewNoopMailer is the constructor for noopMailer.
func NewNoopMailer(logger *slog.Logger) service.Mailer {
	return &noopMailer{logger: logger}
}

// SendValidationLink records the confirmation link that would have been sent.
func (m *noopMailer) SendValidationLink(ctx context.Context, email, link string) error {
	m.logger.InfoContext(ctx, "Validation email suppressed (no-op mailer)",
		slog.String("email", email),
		slog.String("link", link),
	)

	return nil
}
