package publiclink

type CreateRequest struct {
	BookingRequestID int64    `json:"booking_request_id" binding:"required"`
	// SlotIDs restricts the link to a subset of the request's slots.
	// Empty means every materialized slot.
	SlotIDs   []string `json:"slot_ids"`
	AllowList []string `json:"allow_list" binding:"required,min=1,dive,required"`
}

type ExtendAllowListRequest struct {
	Identities []string `json:"identities" binding:"required,min=1,dive,required"`
}
