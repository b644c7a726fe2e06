package services

import (
	"sync"

	"stallpos/entity"
	"stallpos/pkg/apperr"
	"stallpos/repository"
)

// CartLine is one (menu item, variant) row in an operator's draft order.
// The unit price is captured when the line is first added and never re-read,
// so a later menu edit cannot move a draft total.
type CartLine struct {
	MenuItemID uint           `json:"menuItemId"`
	Name       string         `json:"name"`
	Variant    entity.Variant `json:"variant"`
	UnitPrice  int64          `json:"unitPrice"`
	Qty        int            `json:"qty"`
}

func (l CartLine) LineTotal() int64 {
	return l.UnitPrice * int64(l.Qty)
}

// Cart is an operator's draft order. Drafts live in memory only: cheap to
// discard on cancel, and still there for retry when a checkout write fails.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

func (c *Cart) Total() int64 {
	var sum int64
	for _, l := range c.Lines {
		sum += l.LineTotal()
	}
	return sum
}

// CartService keeps one draft per operator, keyed by staff ID.
type CartService struct {
	MenuRepo *repository.MenuRepository

	mu     sync.Mutex
	drafts map[uint]*Cart
}

func NewCartService(menuRepo *repository.MenuRepository) *CartService {
	return &CartService{
		MenuRepo: menuRepo,
		drafts:   make(map[uint]*Cart),
	}
}

// Get returns a copy of the operator's draft, never the live slice.
func (s *CartService) Get(operatorID uint) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := &Cart{Lines: []CartLine{}}
	if c, ok := s.drafts[operatorID]; ok {
		out.Lines = append(out.Lines, c.Lines...)
	}
	return out
}

// Add puts one unit of (item, variant) on the draft. A repeat of the same
// pair increments the existing line instead of duplicating it.
//
// Variant rules: a multi-plate item needs an explicit Full or Half choice
// (Half only when a half price exists); anything else sells as Standard at
// the standard price. No silent fallback.
func (s *CartService) Add(operatorID, menuItemID uint, variant entity.Variant) (*Cart, error) {
	item, err := s.MenuRepo.FindByID(menuItemID)
	if err != nil {
		return nil, err
	}

	var unitPrice int64
	if item.IsMultiPlate {
		switch variant {
		case entity.VariantFull:
			if item.FullPlatePrice == nil {
				return nil, apperr.Validationf("%q has no full plate price", item.Name)
			}
			unitPrice = *item.FullPlatePrice
		case entity.VariantHalf:
			if item.HalfPlatePrice == nil {
				return nil, apperr.Validationf("%q is not sold as half plate", item.Name)
			}
			unitPrice = *item.HalfPlatePrice
		default:
			return nil, apperr.Validationf("%q needs a Full or Half choice", item.Name)
		}
	} else {
		if variant != "" && variant != entity.VariantStandard {
			return nil, apperr.Validationf("%q has no plate variants", item.Name)
		}
		variant = entity.VariantStandard
		unitPrice = item.Price
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.drafts[operatorID]
	if !ok {
		c = &Cart{}
		s.drafts[operatorID] = c
	}
	for i := range c.Lines {
		if c.Lines[i].MenuItemID == menuItemID && c.Lines[i].Variant == variant {
			c.Lines[i].Qty++
			return s.copyLocked(c), nil
		}
	}
	c.Lines = append(c.Lines, CartLine{
		MenuItemID: menuItemID,
		Name:       item.Name,
		Variant:    variant,
		UnitPrice:  unitPrice,
		Qty:        1,
	})
	return s.copyLocked(c), nil
}

// Adjust changes a line's quantity by +1 or -1. Decrementing a line at
// quantity 1 removes it.
func (s *CartService) Adjust(operatorID, menuItemID uint, variant entity.Variant, delta int) (*Cart, error) {
	if delta != 1 && delta != -1 {
		return nil, apperr.Validationf("delta must be +1 or -1")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.drafts[operatorID]
	if !ok {
		return nil, apperr.Validationf("cart is empty")
	}
	for i := range c.Lines {
		if c.Lines[i].MenuItemID != menuItemID || c.Lines[i].Variant != variant {
			continue
		}
		c.Lines[i].Qty += delta
		if c.Lines[i].Qty < 1 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		}
		return s.copyLocked(c), nil
	}
	return nil, apperr.Validationf("no such line in cart")
}

func (s *CartService) Clear(operatorID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, operatorID)
}

func (s *CartService) copyLocked(c *Cart) *Cart {
	out := &Cart{Lines: []CartLine{}}
	out.Lines = append(out.Lines, c.Lines...)
	return out
}
