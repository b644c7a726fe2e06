package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	CustomerName string    `json:"customerName"`
	Mobile       string    `json:"mobile"`
	PlacedAt     time.Time `json:"placedAt"`

	// Sum of line totals at checkout, in paise. Frozen: never recomputed
	// from live menu prices.
	TotalAmount int64 `json:"totalAmount"`

	Lines []OrderLine `json:"lines" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
