package controllers

import (
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/entity"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/pkg/resp"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/services"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.CatalogService }

func NewMenuController(s *services.CatalogService) *MenuController { return &MenuController{Svc: s} }

// GET /menu/dishes?page=&limit=&category=&status=&keyword=
func (ctl *MenuController) Dishes(c *gin.Context) {
	var q entity.DishQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	page, err := ctl.Svc.Dishes(c.Request.Context(), utils.CurrentSessionID(c), q)
	if err != nil {
		resp.FromError(c, "Could not load the menu", err)
		return
	}
	resp.OK(c, page)
}

// GET /menu/dishes/:id
func (ctl *MenuController) Dish(c *gin.Context) {
	d, err := ctl.Svc.Dish(c.Request.Context(), utils.CurrentSessionID(c), c.Param("id"))
	if err != nil {
		resp.FromError(c, "Dish not found", err)
		return
	}
	resp.OK(c, d)
}

// GET /menu/categories
func (ctl *MenuController) Categories(c *gin.Context) {
	items, err := ctl.Svc.Categories(c.Request.Context(), utils.CurrentSessionID(c))
	if err != nil {
		resp.FromError(c, "Could not load categories", err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /tables
func (ctl *MenuController) Tables(c *gin.Context) {
	items, err := ctl.Svc.Tables(c.Request.Context(), utils.CurrentSessionID(c))
	if err != nil {
		resp.FromError(c, "Could not load tables", err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
