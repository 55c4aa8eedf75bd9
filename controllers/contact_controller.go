package controllers

import (
	"encoding/json"

	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/api"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/pkg/resp"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/services"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type ContactController struct{ Svc *services.ContactService }

func NewContactController(s *services.ContactService) *ContactController {
	return &ContactController{Svc: s}
}

// decodeJSON decodes the body with gin's JSON binding settings but does not
// run binding tags. Services trim and lowercase input before validating it.
func decodeJSON(c *gin.Context, out any) bool {
	if c.Request.Body == nil {
		resp.BadRequest(c, "invalid json: empty body")
		return false
	}
	dec := json.NewDecoder(c.Request.Body)
	if binding.EnableDecoderUseNumber {
		dec.UseNumber()
	}
	if binding.EnableDecoderDisallowUnknownFields {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(out); err != nil {
		resp.BadRequest(c, "invalid json: "+err.Error())
		return false
	}
	return true
}

// POST /contact
func (h *ContactController) Submit(c *gin.Context) {
	var in api.ContactInput
	if !decodeJSON(c, &in) {
		return
	}
	if err := h.Svc.Submit(c.Request.Context(), utils.CurrentSessionID(c), in); err != nil {
		resp.FromError(c, "Your message could not be sent", err)
		return
	}
	resp.Done(c, "Thanks, we will get back to you soon", nil)
}
