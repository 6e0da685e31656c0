package models

import "time"

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

type User struct {
	Base
	Name        string     `gorm:"size:100" json:"name"`
	Email       string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password    string     `gorm:"size:255" json:"-"`
	Provider    string     `gorm:"size:50" json:"provider"`
	Role        string     `gorm:"size:20;not null" json:"role"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}
