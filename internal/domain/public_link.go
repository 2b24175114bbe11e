package domain

import "time"

// PublicLink is a shareable, allow-list-gated view over a subset of slots
// from one booking request. The slot set is snapshotted at creation time;
// the allow-list keeps growing afterwards.
type PublicLink struct {
	ID               int64     `json:"id" gorm:"primaryKey;column:id"`
	PublicID         string    `json:"public_id" gorm:"column:public_id;uniqueIndex;size:36"`
	BookingRequestID int64     `json:"booking_request_id" gorm:"column:booking_request_id;index"`
	CreatedAt        time.Time `json:"created_at"`

	Slots     []PublicLinkSlot `json:"-" gorm:"foreignKey:PublicLinkID"`
	AllowList []AllowListEntry `json:"-" gorm:"foreignKey:PublicLinkID"`
}

func (PublicLink) TableName() string { return "public_links" }

type PublicLinkSlot struct {
	ID           int64  `json:"id" gorm:"primaryKey;column:id"`
	PublicLinkID int64  `json:"public_link_id" gorm:"column:public_link_id;uniqueIndex:idx_link_slot"`
	SlotID       string `json:"slot_id" gorm:"column:slot_id;size:64;uniqueIndex:idx_link_slot"`
}

func (PublicLinkSlot) TableName() string { return "public_link_slots" }

// AllowListEntry rows are append-only: the unique index makes re-adding an
// identity a no-op and nothing in the engine ever deletes them.
type AllowListEntry struct {
	ID           int64     `json:"id" gorm:"primaryKey;column:id"`
	PublicLinkID int64     `json:"public_link_id" gorm:"column:public_link_id;uniqueIndex:idx_link_identity"`
	Identity     string    `json:"identity" gorm:"column:identity;uniqueIndex:idx_link_identity"`
	CreatedAt    time.Time `json:"created_at"`
}

func (AllowListEntry) TableName() string { return "allow_list_entries" }
