package models

import "time"

const (
	OrderStatusAccepted   = "accepted"
	OrderStatusOrdered    = "ordered"
	OrderStatusForceMajor = "force-major"
)

var OrderStatuses = []string{OrderStatusAccepted, OrderStatusOrdered, OrderStatusForceMajor}

// Order references product, staff, city and contact without database
// constraints: an order is a historical record and must survive the removal
// of any row it points at.
type Order struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	FullName    string `gorm:"size:100;not null" json:"full_name"`
	Address     string `gorm:"size:255" json:"address"`
	Target      string `gorm:"size:100" json:"target"`
	Status      string `gorm:"size:20" json:"status"`
	Description string `gorm:"size:255" json:"description"`

	ProductID string `gorm:"size:36;index" json:"product_id"`
	StaffID   string `gorm:"size:36;index" json:"staff_id"`
	CityID    string `gorm:"size:36;index" json:"city_id"`
	ContactID string `gorm:"size:36;index" json:"contact_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func ValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}
