package repository

import (
	"errors"
	"fmt"

	"stallpos/entity"
	"stallpos/pkg/apperr"

	"gorm.io/gorm"
)

type StaffRepository struct {
	DB *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{DB: db}
}

func (r *StaffRepository) FindByUsername(username string) (*entity.Staff, error) {
	var s entity.Staff
	if err := r.DB.Where("username = ?", username).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: staff %q", apperr.ErrNotFound, username)
		}
		return nil, err
	}
	return &s, nil
}

func (r *StaffRepository) CountByUsername(username string) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Staff{}).Where("username = ?", username).Count(&cnt).Error
	return cnt, err
}

func (r *StaffRepository) Create(s *entity.Staff) error {
	return r.DB.Create(s).Error
}
