package controllers

import (
	"stallpos/entity"
	"stallpos/pkg/resp"
	"stallpos/services"
	"stallpos/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Svc *services.CartService
}

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{Svc: svc}
}

// GET /cart
func (ctl *CartController) Get(c *gin.Context) {
	cart := ctl.Svc.Get(utils.CurrentStaffID(c))
	resp.OK(c, gin.H{"cart": cart, "total": cart.Total()})
}

// POST /cart/lines
func (ctl *CartController) AddLine(c *gin.Context) {
	var req struct {
		MenuItemID uint           `json:"menuItemId" binding:"required"`
		Variant    entity.Variant `json:"variant"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := ctl.Svc.Add(utils.CurrentStaffID(c), req.MenuItemID, req.Variant)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"cart": cart, "total": cart.Total()})
}

// PATCH /cart/lines
func (ctl *CartController) AdjustLine(c *gin.Context) {
	var req struct {
		MenuItemID uint           `json:"menuItemId" binding:"required"`
		Variant    entity.Variant `json:"variant" binding:"required"`
		Op         int            `json:"op" binding:"required"` // +1 or -1
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := ctl.Svc.Adjust(utils.CurrentStaffID(c), req.MenuItemID, req.Variant, req.Op)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "total": cart.Total()})
}

// DELETE /cart
func (ctl *CartController) Clear(c *gin.Context) {
	ctl.Svc.Clear(utils.CurrentStaffID(c))
	resp.OK(c, gin.H{"message": "cart discarded"})
}
