package services

import (
	"fmt"
	"strings"

	"stallpos/entity"
	"stallpos/pkg/apperr"
	"stallpos/repository"
	"stallpos/ws"
)

type MenuService struct {
	Repo *repository.MenuRepository
	Live *ws.LiveHub
}

func NewMenuService(repo *repository.MenuRepository, live *ws.LiveHub) *MenuService {
	return &MenuService{Repo: repo, Live: live}
}

// MenuItemIn carries the editable fields of a menu item. Prices in paise.
type MenuItemIn struct {
	Name           string `json:"name"`
	Price          int64  `json:"price"`
	IsMultiPlate   bool   `json:"isMultiPlate"`
	FullPlatePrice *int64 `json:"fullPlatePrice"`
	HalfPlatePrice *int64 `json:"halfPlatePrice"`
}

func (in *MenuItemIn) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return apperr.Validationf("name is required")
	}
	if in.IsMultiPlate {
		if in.FullPlatePrice == nil || *in.FullPlatePrice <= 0 {
			return apperr.Validationf("multi-plate item needs a positive full plate price")
		}
		if in.HalfPlatePrice != nil && *in.HalfPlatePrice <= 0 {
			return apperr.Validationf("half plate price must be positive when set")
		}
	} else if in.Price <= 0 {
		return apperr.Validationf("price must be positive")
	}
	return nil
}

func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.Repo.List()
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	return s.Repo.FindByID(id)
}

func (s *MenuService) Create(in *MenuItemIn) (*entity.MenuItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	item := entity.MenuItem{
		Name:           in.Name,
		Price:          in.Price,
		IsMultiPlate:   in.IsMultiPlate,
		FullPlatePrice: in.FullPlatePrice,
		HalfPlatePrice: in.HalfPlatePrice,
	}
	if err := s.Repo.Create(&item); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}
	s.publish("created", item.ID)
	return &item, nil
}

func (s *MenuService) Update(id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	if _, err := s.Repo.FindByID(id); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	fields := map[string]any{
		"name":             in.Name,
		"price":            in.Price,
		"is_multi_plate":   in.IsMultiPlate,
		"full_plate_price": in.FullPlatePrice,
		"half_plate_price": in.HalfPlatePrice,
	}
	if err := s.Repo.UpdateFields(id, fields); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}
	s.publish("updated", id)
	return s.Repo.FindByID(id)
}

// Delete removes a menu item, unless an order line still references it.
// Historical orders are never cascaded away.
func (s *MenuService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		return err
	}
	refs, err := s.Repo.CountOrderLines(id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return fmt.Errorf("%w: item appears in %d order line(s)", apperr.ErrReferentialIntegrity, refs)
	}
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}
	s.publish("deleted", id)
	return nil
}

func (s *MenuService) AttachImage(id uint, ref string) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		return err
	}
	if err := s.Repo.SetImageRef(id, ref); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}
	s.publish("updated", id)
	return nil
}

func (s *MenuService) publish(action string, id uint) {
	if s.Live != nil {
		s.Live.Publish(ws.TopicMenu, action, id)
	}
}
