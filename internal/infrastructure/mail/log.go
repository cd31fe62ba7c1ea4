package mail

import (
	"context"

	"github.com/rs/zerolog"
)

// Log is the mailer used when no SMTP host is configured: it records the
// notification and reports success, which keeps local and test
// environments from needing a mail server.
type Log struct {
	log zerolog.Logger
}

func NewLog(log zerolog.Logger) *Log {
	return &Log{log: log.With().Str("component", "mailer").Logger()}
}

func (m *Log) Send(ctx context.Context, to, subject, htmlBody string) error {
	m.log.Info().Str("to", to).Str("subject", subject).Msg("notification delivered to log")
	return nil
}
