package entity

import (
	"gorm.io/gorm"
)

type Staff struct {
	gorm.Model
	Username     string `json:"username" gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"` // "owner" or "staff"
}
