// README: Share handlers: create a share link, fetch a shared trip.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripper/internal/apperr"
	"tripper/internal/modules/share"
	"tripper/internal/types"
)

type ShareHandler struct {
	share *share.Service
}

func NewShareHandler(svc *share.Service) *ShareHandler {
	return &ShareHandler{share: svc}
}

type createShareReq struct {
	Plan      *types.TripPlan    `json:"plan"`
	FormInput *types.TripRequest `json:"formInput"`
}

// Create handles POST /api/share.
func (h *ShareHandler) Create(c *gin.Context) {
	var req createShareReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Missing plan or form input")
		return
	}
	if req.Plan == nil || req.FormInput == nil {
		writeError(c, http.StatusBadRequest, "Missing plan or form input")
		return
	}

	id, err := h.share.Share(c.Request.Context(), *req.Plan, *req.FormInput)
	if err != nil {
		writeAppError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, gin.H{
		"success":  true,
		"shareId":  id,
		"shareUrl": h.share.ShareURL(id),
	})
}

// Get handles GET /api/share/:id. An id that cannot have been minted by the
// generator is reported the same way as one that was never stored.
func (h *ShareHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusNotFound, apperr.MsgShareNotFound)
		return
	}

	trip, err := h.share.Get(c.Request.Context(), id)
	if err != nil {
		writeAppError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, gin.H{"success": true, "trip": trip})
}
