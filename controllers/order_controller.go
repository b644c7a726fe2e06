package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"stallpos/pkg/apperr"
	"stallpos/pkg/resp"
	"stallpos/services"
	"stallpos/slip"
	"stallpos/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc     *services.OrderService
	Printer slip.Printer // nil when no device is configured
}

func NewOrderController(svc *services.OrderService, printer slip.Printer) *OrderController {
	return &OrderController{Svc: svc, Printer: printer}
}

// POST /orders/checkout
func (ctl *OrderController) Checkout(c *gin.Context) {
	var req struct {
		CustomerName string `json:"customerName"`
		Mobile       string `json:"mobile" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res, err := ctl.Svc.Checkout(utils.CurrentStaffID(c), req.CustomerName, req.Mobile)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, res)
}

// GET /orders?mobile=&limit=
func (ctl *OrderController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	orders, err := ctl.Svc.List(c.Query("mobile"), limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /orders/:id
func (ctl *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	d, err := ctl.Svc.Detail(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, d)
}

// GET /orders/:id/slip
func (ctl *OrderController) Slip(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	d, err := ctl.Svc.SlipData(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.String(http.StatusOK, slip.RenderText(*d))
}

// GET /orders/:id/slip/preview
func (ctl *OrderController) SlipPreview(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	d, err := ctl.Svc.SlipData(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(slip.RenderHTML(*d)))
}

// POST /orders/:id/print
func (ctl *OrderController) Print(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	d, err := ctl.Svc.SlipData(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	if ctl.Printer == nil {
		resp.Error(c, fmt.Errorf("%w: no printer paired", apperr.ErrDeviceUnavailable))
		return
	}
	if err := ctl.Printer.Print(slip.RenderText(*d)); err != nil {
		resp.Error(c, fmt.Errorf("%w: %v", apperr.ErrDeviceUnavailable, err))
		return
	}
	resp.OK(c, gin.H{"message": "slip sent to printer"})
}
