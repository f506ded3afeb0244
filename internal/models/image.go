package models

import "time"

type Image struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	FileName string `gorm:"size:50;uniqueIndex;not null" json:"file_name"`

	ProductID string   `gorm:"size:36;index;not null" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
