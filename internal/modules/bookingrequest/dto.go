package bookingrequest

type CreateRequest struct {
	Date           string  `json:"date" binding:"required"` // 2006-01-02
	DomainTag      string  `json:"domain_tag"`
	InterviewerIDs []int64 `json:"interviewer_ids" binding:"required,min=1"`
}

type MaterializeRequest struct {
	// SlotDurationMinutes overrides the configured default. Zero keeps each
	// availability window as a single slot.
	SlotDurationMinutes *int `json:"slot_duration_minutes"`
}
