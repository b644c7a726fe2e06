package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name string `json:"name"`

	// Standard price in paise, used when the item has no plate variants.
	Price int64 `json:"price"`

	IsMultiPlate   bool   `json:"isMultiPlate"`
	FullPlatePrice *int64 `json:"fullPlatePrice"`
	HalfPlatePrice *int64 `json:"halfPlatePrice"`

	// Label column from the v1 schema, kept so old rows survive migration.
	// New logic relies on IsMultiPlate.
	QuantityType string `json:"quantityType" gorm:"default:Standard"`

	ImageRef string `json:"imageRef"`

	OrderLines []OrderLine `json:"-"`
}
