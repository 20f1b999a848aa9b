package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/habitloop/habitloop-backend/internal/http/response"
	"github.com/habitloop/habitloop-backend/internal/services"
)

type CopyHandler struct {
	toneService services.ToneService
}

func NewCopyHandler(toneService services.ToneService) *CopyHandler {
	return &CopyHandler{toneService: toneService}
}

// GET /copy/today?hour=14
// hour is the client's local hour; without it the server's hour is used.
func (ch *CopyHandler) Today(c *gin.Context) {
	hour := -1
	if raw := c.Query("hour"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil {
			hour = parsed
		}
	}

	daily, err := ch.toneService.DailyCopyFor(c.Request.Context(), hour)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "daily_copy_failed", err)
		return
	}
	response.RespondOK(c, daily)
}
