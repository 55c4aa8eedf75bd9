package controllers

import (
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/pkg/resp"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/services"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Carts *services.CartRegistry }

func NewCartController(r *services.CartRegistry) *CartController { return &CartController{Carts: r} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	m := h.Carts.For(c.Request.Context(), utils.CurrentSessionID(c))
	if err := m.Fetch(c.Request.Context()); err != nil {
		resp.FromError(c, "Could not load your cart", err)
		return
	}
	resp.OK(c, m.Snapshot())
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var body struct {
		DishID   string `json:"dishId" binding:"required"`
		Quantity int    `json:"quantity" binding:"omitempty,min=1"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}
	m := h.Carts.For(c.Request.Context(), utils.CurrentSessionID(c))
	if err := m.AddItem(c.Request.Context(), body.DishID, body.Quantity); err != nil {
		resp.FromError(c, "Could not add the dish to your cart", err)
		return
	}
	resp.Done(c, "Added to cart", m.Snapshot())
}

// PATCH /cart/items/:dishId
func (h *CartController) UpdateQty(c *gin.Context) {
	var body struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m := h.Carts.For(c.Request.Context(), utils.CurrentSessionID(c))
	if err := m.UpdateQuantity(c.Request.Context(), c.Param("dishId"), *body.Quantity); err != nil {
		resp.FromError(c, "Could not update the quantity", err)
		return
	}
	resp.Done(c, "Cart updated", m.Snapshot())
}

// DELETE /cart/items/:dishId
func (h *CartController) RemoveItem(c *gin.Context) {
	m := h.Carts.For(c.Request.Context(), utils.CurrentSessionID(c))
	if err := m.RemoveItem(c.Request.Context(), c.Param("dishId")); err != nil {
		resp.FromError(c, "Could not remove the dish", err)
		return
	}
	resp.Done(c, "Removed from cart", m.Snapshot())
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	m := h.Carts.For(c.Request.Context(), utils.CurrentSessionID(c))
	if err := m.Clear(c.Request.Context()); err != nil {
		resp.FromError(c, "Could not clear your cart", err)
		return
	}
	resp.Done(c, "Cart cleared", m.Snapshot())
}
