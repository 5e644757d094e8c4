// README: Trip generation handler.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripper/internal/apperr"
	"tripper/internal/modules/planner"
)

// generateTimeout bounds the whole pipeline including the model call; plan
// generation for long trips routinely takes tens of seconds.
const generateTimeout = 90 * time.Second

type TripHandler struct {
	planner *planner.Service
}

func NewTripHandler(svc *planner.Service) *TripHandler {
	return &TripHandler{planner: svc}
}

// Generate handles POST /api/generate.
func (h *TripHandler) Generate(c *gin.Context) {
	var in planner.GenerateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, http.StatusBadRequest, apperr.MsgValidation)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	plan, err := h.planner.Generate(ctx, in)
	if err != nil {
		writeAppError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, gin.H{"success": true, "plan": plan})
}
