package controllers

import (
	"strconv"

	"stallpos/pkg/resp"
	"stallpos/services"
	"stallpos/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Svc       *services.MenuService
	UploadDir string
}

func NewMenuController(svc *services.MenuService, uploadDir string) *MenuController {
	return &MenuController{Svc: svc, UploadDir: uploadDir}
}

// GET /inventory
func (ctl *MenuController) List(c *gin.Context) {
	items, err := ctl.Svc.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /inventory/:id
func (ctl *MenuController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	item, err := ctl.Svc.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /inventory
func (ctl *MenuController) Create(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ctl.Svc.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /inventory/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ctl.Svc.Update(uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /inventory/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}

// POST /inventory/:id/image
func (ctl *MenuController) UploadImage(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	fh, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "image file is required")
		return
	}
	ref, err := utils.SaveUpload(fh, ctl.UploadDir)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if err := ctl.Svc.AttachImage(uint(id), ref); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"imageRef": ref})
}
