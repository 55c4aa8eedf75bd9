package controllers

import (
	"net/http"
	"strings"

	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/pkg/resp"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/repository"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/services"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionController stores the access token the UI got from the backend
// login, so later calls can carry it.
type SessionController struct {
	Tokens repository.TokenStore
	Carts  *services.CartRegistry
	Log    *zap.Logger
}

func NewSessionController(tokens repository.TokenStore, carts *services.CartRegistry, log *zap.Logger) *SessionController {
	return &SessionController{Tokens: tokens, Carts: carts, Log: log}
}

// POST /session
func (h *SessionController) Login(c *gin.Context) {
	var body struct {
		AccessToken string `json:"accessToken" binding:"required"`
		SessionID   string `json:"sessionId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	sid := strings.TrimSpace(body.SessionID)
	if sid == "" {
		sid = utils.CurrentSessionID(c)
	}
	if sid == "" {
		sid = uuid.NewString()
	}

	exp := utils.TokenExpiry(body.AccessToken)
	if err := h.Tokens.Put(c.Request.Context(), sid, body.AccessToken, exp); err != nil {
		h.Log.Error("store session token", zap.String("session", sid), zap.Error(err))
		resp.ServerError(c, err)
		return
	}

	// the cart of a previous login on this session is stale now
	h.Carts.Drop(sid)

	out := gin.H{"sessionId": sid}
	if claims, err := utils.InspectToken(body.AccessToken); err == nil {
		out["role"] = claims.Role
		out["userId"] = claims.UserID
	}
	if exp != nil {
		out["expiresAt"] = exp
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "message": "Signed in", "data": out})
}

// DELETE /session
func (h *SessionController) Logout(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	if err := h.Tokens.Delete(c.Request.Context(), sid); err != nil {
		h.Log.Error("delete session token", zap.String("session", sid), zap.Error(err))
		resp.ServerError(c, err)
		return
	}
	h.Carts.Drop(sid)
	resp.Done(c, "Signed out", nil)
}
