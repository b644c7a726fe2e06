package repository

import (
	"errors"
	"fmt"

	"stallpos/entity"
	"stallpos/pkg/apperr"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// List returns the whole menu, newest first.
func (r *MenuRepository) List() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("id DESC").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: menu item %d", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

// UpdateFields writes the given columns only; nil pointer values clear the
// corresponding nullable columns.
func (r *MenuRepository) UpdateFields(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(fields).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

// CountOrderLines reports how many historical order lines reference the item.
func (r *MenuRepository) CountOrderLines(menuItemID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.OrderLine{}).
		Where("menu_item_id = ?", menuItemID).
		Count(&cnt).Error
	return cnt, err
}

func (r *MenuRepository) SetImageRef(id uint, ref string) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).
		Update("image_ref", ref).Error
}
