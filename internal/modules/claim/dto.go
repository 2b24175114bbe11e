package claim

type ClaimRequest struct {
	Identity string `json:"identity" binding:"required"`
}

type CancelRequest struct {
	ReleaseSlot bool `json:"release_slot"`
}
