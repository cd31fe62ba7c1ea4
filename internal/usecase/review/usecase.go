package review

import (
	"context"
	"errors"

	"advising-backend/internal/domain/notify"
	"advising-backend/internal/domain/record"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Usecase struct {
	records record.Repository
	mailer  notify.Mailer
	log     zerolog.Logger
}

func NewUsecase(records record.Repository, mailer notify.Mailer, log zerolog.Logger) *Usecase {
	return &Usecase{records: records, mailer: mailer, log: log.With().Str("component", "review").Logger()}
}

// ApplyStatusUpdates persists each accepted/rejected decision and then
// notifies the student. Updates are sequential, no cross-batch atomicity:
// a storage fault stops the loop and leaves earlier decisions committed.
// Notification delivery is at-most-once; a send failure is logged and the
// committed status stands.
func (u *Usecase) ApplyStatusUpdates(ctx context.Context, updates map[int64]StatusUpdate) error {
	for advisingID, upd := range updates {
		status, ok := decisionStatus(upd.Status)
		if !ok {
			continue
		}

		if err := u.records.UpdateStatus(ctx, advisingID, status); err != nil {
			return err
		}

		rec, err := u.records.GetByAdvisingID(ctx, advisingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Bulk updates may carry stale identifiers; skip silently.
				continue
			}
			return err
		}

		subject, body := composeDecisionMail(status, rec.CurrentTerm, upd.Comments)
		if err := u.mailer.Send(ctx, rec.StudentEmail, subject, body); err != nil {
			u.log.Error().Err(err).
				Int64("advising_id", advisingID).
				Str("to", rec.StudentEmail).
				Msg("notification delivery failed")
		}
	}
	return nil
}

// BulkUpdate writes status/rejectReason directly, one statement per record.
func (u *Usecase) BulkUpdate(ctx context.Context, updates map[int64]FieldUpdate) error {
	for advisingID, f := range updates {
		if err := u.records.UpdateDecision(ctx, advisingID, record.Status(f.Status), f.RejectReason); err != nil {
			return err
		}
	}
	return nil
}

func decisionStatus(s string) (record.Status, bool) {
	switch s {
	case "accepted":
		return record.StatusAccepted, true
	case "rejected":
		return record.StatusRejected, true
	default:
		return "", false
	}
}
