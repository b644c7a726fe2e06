package repository

import (
	"errors"
	"fmt"

	"stallpos/entity"
	"stallpos/pkg/apperr"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Writes take the caller's tx so an order and its lines land in one
// transaction.
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateLine(tx *gorm.DB, l *entity.OrderLine) error {
	return tx.Create(l).Error
}

func (r *OrderRepository) GetOrder(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetLines(orderID uint) ([]entity.OrderLine, error) {
	var lines []entity.OrderLine
	err := r.DB.Where("order_id = ?", orderID).Order("id").Find(&lines).Error
	return lines, err
}

// List returns orders with their lines, newest first, optionally filtered
// by customer mobile.
func (r *OrderRepository) List(mobile string, limit int) ([]entity.Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	db := r.DB.Preload("Lines").Order("placed_at DESC").Limit(limit)
	if mobile != "" {
		db = db.Where("mobile = ?", mobile)
	}
	var orders []entity.Order
	err := db.Find(&orders).Error
	return orders, err
}
