package notify

import "context"

// Mailer delivers one HTML notification. Delivery is best-effort:
// callers must not treat a send failure as grounds to roll back an
// already-committed status change.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
