package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name        string          `gorm:"size:100;not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2)" json:"price"`
	Description string          `gorm:"size:255" json:"description"`

	CategoryID string    `gorm:"size:36;index;not null" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`

	// Products may outlive the staff member who registered them, so no
	// database constraint is declared on this column.
	StaffID string `gorm:"size:36;index" json:"staff_id"`

	Images []Image `gorm:"foreignKey:ProductID" json:"images"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
