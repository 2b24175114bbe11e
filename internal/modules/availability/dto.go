package availability

// WindowInput is one offered range, local to a single date.
type WindowInput struct {
	Date  string `json:"date" binding:"required"`  // 2006-01-02
	Start string `json:"start" binding:"required"` // 15:04
	End   string `json:"end" binding:"required"`   // 15:04
}

type SubmitRequest struct {
	Windows []WindowInput `json:"windows" binding:"required,min=1,dive"`
}
