package controllers

import (
	"strings"
	"time"

	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/api"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/entity"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/pkg/resp"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/services"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Svc *services.AdminService
	Loc *time.Location
}

func NewAdminController(s *services.AdminService, loc *time.Location) *AdminController {
	if loc == nil {
		loc = time.Local
	}
	return &AdminController{Svc: s, Loc: loc}
}

// ----- categories -----

// GET /admin/categories
func (ac *AdminController) Categories(c *gin.Context) {
	items, err := ac.Svc.Categories(c.Request.Context(), utils.CurrentSessionID(c))
	if err != nil {
		resp.FromError(c, "Could not load categories", err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /admin/categories
func (ac *AdminController) CreateCategory(c *gin.Context) {
	var in api.CategoryInput
	if !decodeJSON(c, &in) {
		return
	}
	out, err := ac.Svc.CreateCategory(c.Request.Context(), utils.CurrentSessionID(c), in)
	if err != nil {
		resp.FromError(c, "Could not create the category", err)
		return
	}
	resp.Created(c, out)
}

// PATCH /admin/categories/:id
func (ac *AdminController) UpdateCategory(c *gin.Context) {
	var in api.CategoryInput
	if !decodeJSON(c, &in) {
		return
	}
	out, err := ac.Svc.UpdateCategory(c.Request.Context(), utils.CurrentSessionID(c), c.Param("id"), in)
	if err != nil {
		resp.FromError(c, "Could not update the category", err)
		return
	}
	resp.Done(c, "Category updated", out)
}

// DELETE /admin/categories/:id
func (ac *AdminController) DeleteCategory(c *gin.Context) {
	if err := ac.Svc.DeleteCategory(c.Request.Context(), utils.CurrentSessionID(c), c.Param("id")); err != nil {
		resp.FromError(c, "Could not delete the category", err)
		return
	}
	resp.Done(c, "Category deleted", nil)
}

// ----- dishes -----

// GET /admin/dishes
func (ac *AdminController) Dishes(c *gin.Context) {
	var q entity.DishQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	page, err := ac.Svc.Dishes(c.Request.Context(), utils.CurrentSessionID(c), q)
	if err != nil {
		resp.FromError(c, "Could not load dishes", err)
		return
	}
	resp.OK(c, page)
}

// POST /admin/dishes
func (ac *AdminController) CreateDish(c *gin.Context) {
	var in api.DishInput
	if !decodeJSON(c, &in) {
		return
	}
	out, err := ac.Svc.CreateDish(c.Request.Context(), utils.CurrentSessionID(c), in)
	if err != nil {
		resp.FromError(c, "Could not create the dish", err)
		return
	}
	resp.Created(c, out)
}

// PATCH /admin/dishes/:id
func (ac *AdminController) UpdateDish(c *gin.Context) {
	var in api.DishInput
	if !decodeJSON(c, &in) {
		return
	}
	out, err := ac.Svc.UpdateDish(c.Request.Context(), utils.CurrentSessionID(c), c.Param("id"), in)
	if err != nil {
		resp.FromError(c, "Could not update the dish", err)
		return
	}
	resp.Done(c, "Dish updated", out)
}

// DELETE /admin/dishes/:id
func (ac *AdminController) DeleteDish(c *gin.Context) {
	if err := ac.Svc.DeleteDish(c.Request.Context(), utils.CurrentSessionID(c), c.Param("id")); err != nil {
		resp.FromError(c, "Could not delete the dish", err)
		return
	}
	resp.Done(c, "Dish deleted", nil)
}

// ----- discounts -----

// the back office date pickers send plain dates
type discountReq struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Percentage  float64 `json:"percentage"`
	ValidFrom   string  `json:"validFrom"`
	ValidTo     string  `json:"validTo"`
	Active      bool    `json:"active"`
}

func (ac *AdminController) parseDay(s string) time.Time {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(dateLayout, s, ac.Loc); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

func (ac *AdminController) discountInput(c *gin.Context) (api.DiscountInput, bool) {
	var req discountReq
	if !decodeJSON(c, &req) {
		return api.DiscountInput{}, false
	}
	return api.DiscountInput{
		Code:        req.Code,
		Description: req.Description,
		Percentage:  req.Percentage,
		ValidFrom:   ac.parseDay(req.ValidFrom),
		ValidTo:     ac.parseDay(req.ValidTo),
		Active:      req.Active,
	}, true
}

// GET /admin/discounts
func (ac *AdminController) Discounts(c *gin.Context) {
	items, err := ac.Svc.Discounts(c.Request.Context(), utils.CurrentSessionID(c))
	if err != nil {
		resp.FromError(c, "Could not load discounts", err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /admin/discounts
func (ac *AdminController) CreateDiscount(c *gin.Context) {
	in, ok := ac.discountInput(c)
	if !ok {
		return
	}
	out, err := ac.Svc.CreateDiscount(c.Request.Context(), utils.CurrentSessionID(c), in)
	if err != nil {
		resp.FromError(c, "Could not create the discount", err)
		return
	}
	resp.Created(c, out)
}

// PATCH /admin/discounts/:id
func (ac *AdminController) UpdateDiscount(c *gin.Context) {
	in, ok := ac.discountInput(c)
	if !ok {
		return
	}
	out, err := ac.Svc.UpdateDiscount(c.Request.Context(), utils.CurrentSessionID(c), c.Param("id"), in)
	if err != nil {
		resp.FromError(c, "Could not update the discount", err)
		return
	}
	resp.Done(c, "Discount updated", out)
}

// DELETE /admin/discounts/:id
func (ac *AdminController) DeleteDiscount(c *gin.Context) {
	if err := ac.Svc.DeleteDiscount(c.Request.Context(), utils.CurrentSessionID(c), c.Param("id")); err != nil {
		resp.FromError(c, "Could not delete the discount", err)
		return
	}
	resp.Done(c, "Discount deleted", nil)
}

// ----- contacts -----

// GET /admin/contacts
func (ac *AdminController) Contacts(c *gin.Context) {
	items, err := ac.Svc.Contacts(c.Request.Context(), utils.CurrentSessionID(c))
	if err != nil {
		resp.FromError(c, "Could not load messages", err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// DELETE /admin/contacts/:id
func (ac *AdminController) DeleteContact(c *gin.Context) {
	if err := ac.Svc.DeleteContact(c.Request.Context(), utils.CurrentSessionID(c), c.Param("id")); err != nil {
		resp.FromError(c, "Could not delete the message", err)
		return
	}
	resp.Done(c, "Message deleted", nil)
}
