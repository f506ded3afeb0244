package models

import "time"

const (
	ContactStatusBusy     = "busy"
	ContactStatusNonExist = "non-exist"
	ContactStatusCancel   = "cancel"
)

var ContactStatuses = []string{ContactStatusBusy, ContactStatusNonExist, ContactStatusCancel}

type Contact struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	PhoneNumber string `gorm:"size:20;uniqueIndex;not null" json:"phone_number"`
	UniqueID    string `gorm:"column:unique_id;size:10;uniqueIndex;not null" json:"unique_id"`
	Status      string `gorm:"size:20" json:"status"`
	IsOld       bool   `gorm:"default:false" json:"is_old"`

	// Contacts keep their staff reference even after the staff member is
	// removed, so no database constraint is declared on this column.
	StaffID string `gorm:"size:36;index" json:"staff_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func ValidContactStatus(status string) bool {
	for _, s := range ContactStatuses {
		if s == status {
			return true
		}
	}
	return false
}
