package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitloop/habitloop-backend/internal/http/response"
	"github.com/habitloop/habitloop-backend/internal/services"
)

// RetentionHandler exposes the delete-intent flow. Every transition
// returns the resulting session so the client never tracks state on its
// own.
type RetentionHandler struct {
	retentionService services.RetentionService
}

func NewRetentionHandler(retentionService services.RetentionService) *RetentionHandler {
	return &RetentionHandler{retentionService: retentionService}
}

// POST /account/delete-intent
func (rh *RetentionHandler) Open(c *gin.Context) {
	session, err := rh.retentionService.Open(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "open_flow_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"session": session})
}

// GET /retention/session
func (rh *RetentionHandler) Session(c *gin.Context) {
	session, err := rh.retentionService.Session(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "get_session_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"session": session})
}

// GET /retention/science
func (rh *RetentionHandler) Science(c *gin.Context) {
	content, err := rh.retentionService.Science(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "get_science_failed", err)
		return
	}
	response.RespondOK(c, content)
}

// POST /retention/concern
// body: { "concern": "hard" | "forget" | "busy" | "features" | "other" }
func (rh *RetentionHandler) SelectConcern(c *gin.Context) {
	var req struct {
		Concern string `json:"concern"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	session, err := rh.retentionService.SelectConcern(c.Request.Context(), req.Concern)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "select_concern_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"session": session})
}

// POST /retention/continue
func (rh *RetentionHandler) Continue(c *gin.Context) {
	session, err := rh.retentionService.Continue(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "continue_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"session": session})
}

// POST /retention/answers
// body: { "index": 0, "text": "..." }
func (rh *RetentionHandler) SetAnswer(c *gin.Context) {
	var req struct {
		Index int    `json:"index"`
		Text  string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	session, err := rh.retentionService.SetAnswer(c.Request.Context(), req.Index, req.Text)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "set_answer_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"session": session})
}

// POST /retention/still-want-to-leave
func (rh *RetentionHandler) StillWantToLeave(c *gin.Context) {
	session, err := rh.retentionService.StillWantToLeave(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "still_want_to_leave_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"session": session})
}

// POST /retention/keep-account
func (rh *RetentionHandler) KeepAccount(c *gin.Context) {
	session, err := rh.retentionService.KeepAccount(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "keep_account_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"session": session})
}

// POST /retention/resume
func (rh *RetentionHandler) Resume(c *gin.Context) {
	session, err := rh.retentionService.Resume(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "resume_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"session": session})
}

// POST /retention/close
func (rh *RetentionHandler) Close(c *gin.Context) {
	session, err := rh.retentionService.Close(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "close_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"session": session})
}

// POST /retention/confirm-delete
func (rh *RetentionHandler) ConfirmDelete(c *gin.Context) {
	session, err := rh.retentionService.ConfirmDelete(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "confirm_delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"session": session, "deleted": true})
}
