package models

import "time"

const (
	RoleSuperAdmin = "SUPER-ADMIN"
	RoleAdmin      = "ADMIN"
	RoleOperator   = "OPERATOR"
)

var StaffRoles = []string{RoleSuperAdmin, RoleAdmin, RoleOperator}

type Staff struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	FullName    string `gorm:"size:100;not null" json:"full_name"`
	PhoneNumber string `gorm:"size:20;uniqueIndex;not null" json:"phone_number"`
	Card        string `gorm:"size:16" json:"card"`
	Role        string `gorm:"size:20;not null" json:"role"`
	Login       string `gorm:"size:50;uniqueIndex;not null" json:"login"`

	HashedPassword     string `gorm:"size:255;not null" json:"-"`
	HashedRefreshToken string `gorm:"size:255" json:"-"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func ValidRole(role string) bool {
	for _, r := range StaffRoles {
		if r == role {
			return true
		}
	}
	return false
}
