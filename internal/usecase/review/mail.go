package review

import (
	"fmt"
	"html"

	"advising-backend/internal/domain/record"
)

const (
	subjectPlanUpdate = "Your Advising Plan Update"
	defaultComments   = "No additional comments provided."
)

func composeDecisionMail(status record.Status, currentTerm, comments string) (subject, body string) {
	if comments == "" {
		comments = defaultComments
	}
	term := html.EscapeString(currentTerm)
	comments = html.EscapeString(comments)

	switch status {
	case record.StatusAccepted:
		body = fmt.Sprintf(
			"<p>Congratulations,</p><p>Your Advising plan for the term <strong>%s</strong> has been accepted!</p><p><strong>Advisor Comments:</strong> %s</p>",
			term, comments)
	default:
		body = fmt.Sprintf(
			"<p>We're sorry,</p><p>Your Advising plan for the term <strong>%s</strong> has been rejected.</p><p><strong>Advisor Comments:</strong> %s</p>",
			term, comments)
	}
	return subjectPlanUpdate, body
}
