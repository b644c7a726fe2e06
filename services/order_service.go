package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"stallpos/entity"
	"stallpos/pkg/apperr"
	"stallpos/repository"
	"stallpos/slip"
	"stallpos/ws"

	"gorm.io/gorm"
)

var mobileRe = regexp.MustCompile(`^[0-9]{10}$`)

// StallInfo is the slip header/QR configuration.
type StallInfo struct {
	Name       string
	Tagline    string
	UPIPayeeID string
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	Carts    *CartService
	Live     *ws.LiveHub
	Stall    StallInfo
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	carts *CartService,
	live *ws.LiveHub,
	stall StallInfo,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo, Carts: carts, Live: live, Stall: stall}
}

type CheckoutRes struct {
	ID    uint  `json:"id"`
	Total int64 `json:"total"`
}

// Checkout turns the operator's draft into a persisted order. The order and
// its lines are written in one transaction; unit prices are copied verbatim
// from the cart snapshot. On failure the draft stays in memory for retry.
func (s *OrderService) Checkout(operatorID uint, customerName, mobile string) (*CheckoutRes, error) {
	mobile = strings.TrimSpace(mobile)
	if !mobileRe.MatchString(mobile) {
		return nil, apperr.Validationf("mobile must be exactly 10 digits")
	}

	cart := s.Carts.Get(operatorID)
	if len(cart.Lines) == 0 {
		return nil, apperr.Validationf("cart is empty")
	}

	name := strings.TrimSpace(customerName)
	if name == "" {
		name = mobile
	}

	var out CheckoutRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			CustomerName: name,
			Mobile:       mobile,
			PlacedAt:     time.Now(),
			TotalAmount:  cart.Total(),
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, l := range cart.Lines {
			line := entity.OrderLine{
				OrderID:         order.ID,
				MenuItemID:      l.MenuItemID,
				Qty:             l.Qty,
				UnitPriceAtTime: l.UnitPrice,
			}
			if err := s.Repo.CreateLine(tx, &line); err != nil {
				return err
			}
		}
		out = CheckoutRes{ID: order.ID, Total: order.TotalAmount}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}

	s.Carts.Clear(operatorID)
	if s.Live != nil {
		s.Live.Publish(ws.TopicOrders, "created", out.ID)
	}
	return &out, nil
}

func (s *OrderService) List(mobile string, limit int) ([]entity.Order, error) {
	return s.Repo.List(mobile, limit)
}

// OrderLineView is an order line resolved to display form: current item
// name plus the inferred variant tag.
type OrderLineView struct {
	MenuItemID uint           `json:"menuItemId"`
	Name       string         `json:"name"`
	Variant    entity.Variant `json:"variant"`
	Qty        int            `json:"qty"`
	UnitPrice  int64          `json:"unitPrice"`
	LineTotal  int64          `json:"lineTotal"`
}

type OrderDetail struct {
	Order entity.Order    `json:"order"`
	Lines []OrderLineView `json:"lines"`
}

func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	lines, err := s.Repo.GetLines(o.ID)
	if err != nil {
		return nil, err
	}

	views := make([]OrderLineView, 0, len(lines))
	for _, l := range lines {
		// RESTRICT on order lines keeps referenced items alive, so the
		// lookup only misses on a corrupted store.
		item, err := s.MenuRepo.FindByID(l.MenuItemID)
		if err != nil {
			item = nil
		}
		name := "(unavailable)"
		if item != nil {
			name = item.Name
		}
		views = append(views, OrderLineView{
			MenuItemID: l.MenuItemID,
			Name:       name,
			Variant:    ResolveVariant(item, l.UnitPriceAtTime),
			Qty:        l.Qty,
			UnitPrice:  l.UnitPriceAtTime,
			LineTotal:  l.UnitPriceAtTime * int64(l.Qty),
		})
	}
	return &OrderDetail{Order: *o, Lines: views}, nil
}

// SlipData assembles everything the slip renderers need for an order.
func (s *OrderService) SlipData(orderID uint) (*slip.Data, error) {
	d, err := s.Detail(orderID)
	if err != nil {
		return nil, err
	}
	lines := make([]slip.Line, 0, len(d.Lines))
	for _, l := range d.Lines {
		lines = append(lines, slip.Line{
			Name:      l.Name,
			Variant:   string(l.Variant),
			Qty:       l.Qty,
			UnitPrice: l.UnitPrice,
		})
	}
	return &slip.Data{
		StallName:    s.Stall.Name,
		Tagline:      s.Stall.Tagline,
		OrderID:      d.Order.ID,
		PlacedAt:     d.Order.PlacedAt,
		CustomerName: d.Order.CustomerName,
		Mobile:       d.Order.Mobile,
		Lines:        lines,
		Total:        d.Order.TotalAmount,
		UPIPayeeID:   s.Stall.UPIPayeeID,
	}, nil
}
