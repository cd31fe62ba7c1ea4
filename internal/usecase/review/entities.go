package review

// StatusUpdate is one advisor decision from the update-status endpoint.
// Status arrives lowercase ("accepted"/"rejected"); anything else is ignored.
type StatusUpdate struct {
	Status   string `json:"status"`
	Comments string `json:"comments"`
}

// FieldUpdate is the raw bulk-edit shape: direct status/rejectReason write,
// no notification.
type FieldUpdate struct {
	Status       string  `json:"status"`
	RejectReason *string `json:"rejectReason"`
}
