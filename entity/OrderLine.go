package entity

import (
	"gorm.io/gorm"
)

type OrderLine struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	// RESTRICT: a menu item cannot be deleted while an order line points at it.
	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-" gorm:"constraint:OnDelete:RESTRICT;"`

	Qty int `json:"qty"`

	// Price snapshot taken at checkout, in paise. Reprints must use this,
	// never the live menu price.
	UnitPriceAtTime int64 `json:"unitPriceAtTime"`
}
