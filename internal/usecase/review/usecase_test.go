package review

import (
	"context"
	"errors"
	"strings"
	"testing"

	domain "advising-backend/internal/domain/record"
	"advising-backend/internal/testutil/recordmock"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type sentMail struct {
	to, subject, body string
}

type mailerMock struct {
	sent []sentMail
	err  error
}

func (m *mailerMock) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}

func newReviewUsecase(records *recordmock.Repo, mailer *mailerMock) *Usecase {
	return NewUsecase(records, mailer, zerolog.Nop())
}

func pendingRecord(id int64) *domain.AdvisingRecord {
	return &domain.AdvisingRecord{
		AdvisingID:   id,
		StudentEmail: "s@uni.edu",
		LastTerm:     "Fall2024",
		CurrentTerm:  "Spring2025",
		Status:       domain.StatusPending,
	}
}

func TestApplyStatusUpdates_AcceptedSendsMail(t *testing.T) {
	var savedStatus domain.Status
	records := &recordmock.Repo{
		UpdateStatusFn: func(ctx context.Context, advisingID int64, status domain.Status) error {
			savedStatus = status
			return nil
		},
		GetByAdvisingIDFn: func(ctx context.Context, advisingID int64) (*domain.AdvisingRecord, error) {
			return pendingRecord(advisingID), nil
		},
	}
	mailer := &mailerMock{}
	uc := newReviewUsecase(records, mailer)

	err := uc.ApplyStatusUpdates(context.Background(), map[int64]StatusUpdate{
		1: {Status: "accepted", Comments: "Good plan"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, savedStatus)

	require.Len(t, mailer.sent, 1)
	mail := mailer.sent[0]
	assert.Equal(t, "s@uni.edu", mail.to)
	assert.Equal(t, "Your Advising Plan Update", mail.subject)
	assert.Contains(t, mail.body, "Spring2025")
	assert.Contains(t, mail.body, "accepted")
	assert.Contains(t, mail.body, "Good plan")
}

func TestApplyStatusUpdates_RejectedDefaultsComments(t *testing.T) {
	records := &recordmock.Repo{
		UpdateStatusFn: func(ctx context.Context, advisingID int64, status domain.Status) error {
			return nil
		},
		GetByAdvisingIDFn: func(ctx context.Context, advisingID int64) (*domain.AdvisingRecord, error) {
			return pendingRecord(advisingID), nil
		},
	}
	mailer := &mailerMock{}
	uc := newReviewUsecase(records, mailer)

	err := uc.ApplyStatusUpdates(context.Background(), map[int64]StatusUpdate{
		2: {Status: "rejected"},
	})
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].body, "rejected")
	assert.Contains(t, mailer.sent[0].body, "No additional comments provided.")
}

func TestApplyStatusUpdates_UnknownIDIsSilentNoop(t *testing.T) {
	records := &recordmock.Repo{
		UpdateStatusFn: func(ctx context.Context, advisingID int64, status domain.Status) error {
			// UPDATE with no matching row is not an error.
			return nil
		},
		GetByAdvisingIDFn: func(ctx context.Context, advisingID int64) (*domain.AdvisingRecord, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	mailer := &mailerMock{}
	uc := newReviewUsecase(records, mailer)

	err := uc.ApplyStatusUpdates(context.Background(), map[int64]StatusUpdate{
		999: {Status: "accepted"},
	})
	require.NoError(t, err)
	assert.Empty(t, mailer.sent)
}

func TestApplyStatusUpdates_IgnoresNonDecisionStatus(t *testing.T) {
	records := &recordmock.Repo{
		UpdateStatusFn: func(ctx context.Context, advisingID int64, status domain.Status) error {
			t.Fatalf("UpdateStatus must not run for status %q", status)
			return nil
		},
	}
	uc := newReviewUsecase(records, &mailerMock{})

	err := uc.ApplyStatusUpdates(context.Background(), map[int64]StatusUpdate{
		1: {Status: "pending"},
		2: {Status: ""},
	})
	require.NoError(t, err)
}

func TestApplyStatusUpdates_MailFailureDoesNotFailBatch(t *testing.T) {
	records := &recordmock.Repo{
		UpdateStatusFn: func(ctx context.Context, advisingID int64, status domain.Status) error {
			return nil
		},
		GetByAdvisingIDFn: func(ctx context.Context, advisingID int64) (*domain.AdvisingRecord, error) {
			return pendingRecord(advisingID), nil
		},
	}
	mailer := &mailerMock{err: errors.New("smtp down")}
	uc := newReviewUsecase(records, mailer)

	err := uc.ApplyStatusUpdates(context.Background(), map[int64]StatusUpdate{
		1: {Status: "accepted"},
	})
	assert.NoError(t, err, "delivery is best-effort; the committed status stands")
}

func TestApplyStatusUpdates_StorageFaultStopsBatch(t *testing.T) {
	boom := errors.New("boom")
	records := &recordmock.Repo{
		UpdateStatusFn: func(ctx context.Context, advisingID int64, status domain.Status) error {
			return boom
		},
	}
	uc := newReviewUsecase(records, &mailerMock{})

	err := uc.ApplyStatusUpdates(context.Background(), map[int64]StatusUpdate{
		1: {Status: "rejected"},
	})
	assert.ErrorIs(t, err, boom)
}

func TestBulkUpdate_WritesStatusAndReason(t *testing.T) {
	type call struct {
		id     int64
		status domain.Status
		reason *string
	}
	var calls []call
	records := &recordmock.Repo{
		UpdateDecisionFn: func(ctx context.Context, advisingID int64, status domain.Status, rejectReason *string) error {
			calls = append(calls, call{id: advisingID, status: status, reason: rejectReason})
			return nil
		},
	}
	uc := newReviewUsecase(records, &mailerMock{})

	reason := "missing prerequisites"
	err := uc.BulkUpdate(context.Background(), map[int64]FieldUpdate{
		4: {Status: "Rejected", RejectReason: &reason},
	})
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, int64(4), calls[0].id)
	assert.Equal(t, domain.StatusRejected, calls[0].status)
	require.NotNil(t, calls[0].reason)
	assert.Equal(t, reason, *calls[0].reason)
}

func TestComposeDecisionMail_EscapesComments(t *testing.T) {
	_, body := composeDecisionMail(domain.StatusAccepted, "Spring2025", `<script>alert("x")</script>`)
	assert.False(t, strings.Contains(body, "<script>"), "comments must be HTML-escaped")
}
