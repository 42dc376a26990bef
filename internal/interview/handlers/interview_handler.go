// Package handlers provides the HTTP surface of the interview module,
// bridging the transport layer and the use-case services and
// translating between JSON view objects and domain models.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nkove/interviewd/internal/interview/models"
	"github.com/nkove/interviewd/internal/interview/repository"
	"github.com/nkove/interviewd/internal/interview/responder"

	"github.com/nkove/interviewd/internal/interview/controller"
)

// InterviewController defines the use-case interface the interview
// handlers invoke.
type InterviewController interface {
	Create(ctx context.Context, cmd controller.CreateInterviewCommand) (*models.Interview, error)
	Start(ctx context.Context, interviewID uuid.UUID) (*models.Interview, error)
	SendMessage(ctx context.Context, cmd controller.SendMessageCommand) (*models.Interview, error)
	Complete(ctx context.Context, cmd controller.CompleteInterviewCommand) (*models.Interview, error)
	Cancel(ctx context.Context, interviewID uuid.UUID) (*models.Interview, error)
	Get(ctx context.Context, interviewID uuid.UUID) (*models.Interview, error)
	List(ctx context.Context, filters repository.InterviewFilters) ([]*models.Interview, error)
	Active(ctx context.Context) ([]*models.Interview, error)
}

// CharacterGetter is the slice of the character use cases the interview
// handler needs for reply generation.
type CharacterGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Character, error)
}

// CompanyGetter is the slice of the company use cases the interview
// handler needs for reply generation.
type CompanyGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Company, error)
}

// InterviewHandler serves the interview lifecycle endpoints.
type InterviewHandler struct {
	service    InterviewController
	characters CharacterGetter
	companies  CompanyGetter
	responder  responder.Responder
	logger     *zap.Logger
}

// NewInterviewHandler constructs an InterviewHandler. The responder may
// be nil, in which case user messages get no automatic AI reply.
func NewInterviewHandler(
	service InterviewController,
	characters CharacterGetter,
	companies CompanyGetter,
	rsp responder.Responder,
	logger *zap.Logger,
) *InterviewHandler {
	return &InterviewHandler{
		service:    service,
		characters: characters,
		companies:  companies,
		responder:  rsp,
		logger:     logger.Named("interview_handler"),
	}
}

type createInterviewRequest struct {
	CharacterID string `json:"character_id" binding:"required"`
	CompanyID   string `json:"company_id" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// Create handles POST /interviews.
func (h *InterviewHandler) Create(c *gin.Context) {
	var req createInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	characterID, err := uuid.Parse(req.CharacterID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid character_id"})
		return
	}
	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company_id"})
		return
	}

	interview, err := h.service.Create(c.Request.Context(), controller.CreateInterviewCommand{
		CharacterID: characterID,
		CompanyID:   companyID,
		Type:        models.InterviewType(req.Type),
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.logger.Error("Create interview failed", zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, interviewToVO(interview))
}

// Start handles POST /interviews/:id/start.
func (h *InterviewHandler) Start(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	interview, err := h.service.Start(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("Start interview failed", zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, interviewToVO(interview))
}

type sendMessageRequest struct {
	Sender   string         `json:"sender" binding:"required"`
	Type     string         `json:"type" binding:"required"`
	Content  string         `json:"content" binding:"required"`
	Metadata map[string]any `json:"metadata"`
}

// SendMessage handles POST /interviews/:id/messages. After a user text
// message it appends the responder's AI reply through the same use case.
func (h *InterviewHandler) SendMessage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	interview, err := h.service.SendMessage(c.Request.Context(), controller.SendMessageCommand{
		InterviewID: id,
		Sender:      models.MessageSender(req.Sender),
		Type:        models.MessageType(req.Type),
		Content:     req.Content,
		Metadata:    req.Metadata,
	})
	if err != nil {
		h.logger.Error("Send message failed", zap.Error(err))
		writeError(c, err)
		return
	}

	if h.responder != nil && models.MessageSender(req.Sender) == models.SenderUser {
		if replied := h.replyTo(c.Request.Context(), interview, req.Content); replied != nil {
			interview = replied
		}
	}
	c.JSON(http.StatusOK, interviewToVO(interview))
}

// replyTo asks the responder for the interviewer's reply and appends
// it. Reply failures are logged and swallowed: the user's message is
// already persisted and the conversation can continue without the
// generated turn.
func (h *InterviewHandler) replyTo(ctx context.Context, interview *models.Interview, userMessage string) *models.Interview {
	character, err := h.characters.Get(ctx, interview.CharacterID)
	if err != nil {
		character = nil
	}
	company, err := h.companies.Get(ctx, interview.CompanyID)
	if err != nil {
		company = nil
	}

	reply, err := h.responder.Reply(ctx, character, company, interview, userMessage)
	if err != nil {
		h.logger.Warn("Responder failed, skipping AI reply",
			zap.Error(err),
			zap.String("interview_id", interview.ID.String()),
		)
		return nil
	}

	updated, err := h.service.SendMessage(ctx, controller.SendMessageCommand{
		InterviewID: interview.ID,
		Sender:      models.SenderAI,
		Type:        models.MessageTypeText,
		Content:     reply,
		Metadata:    map[string]any{"generated": true},
	})
	if err != nil {
		h.logger.Warn("Failed to append AI reply", zap.Error(err),
			zap.String("interview_id", interview.ID.String()),
		)
		return nil
	}
	return updated
}

type completeInterviewRequest struct {
	Score    *int   `json:"score"`
	Feedback string `json:"feedback"`
}

// Complete handles POST /interviews/:id/complete.
func (h *InterviewHandler) Complete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	// Score and feedback are optional; an empty body is a valid request.
	var req completeInterviewRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	interview, err := h.service.Complete(c.Request.Context(), controller.CompleteInterviewCommand{
		InterviewID: id,
		Score:       req.Score,
		Feedback:    req.Feedback,
	})
	if err != nil {
		h.logger.Error("Complete interview failed", zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, interviewToVO(interview))
}

// Cancel handles POST /interviews/:id/cancel.
func (h *InterviewHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	interview, err := h.service.Cancel(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("Cancel interview failed", zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, interviewToVO(interview))
}

// Get handles GET /interviews/:id.
func (h *InterviewHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	interview, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, interviewToVO(interview))
}

// List handles GET /interviews with optional filters. The "active"
// shortcut query returns in-progress interviews only.
func (h *InterviewHandler) List(c *gin.Context) {
	if c.Query("active") == "true" {
		interviews, err := h.service.Active(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, interviewsToVO(interviews))
		return
	}

	filters, ok := interviewFiltersFromQuery(c)
	if !ok {
		return
	}
	interviews, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, interviewsToVO(interviews))
}

// interviewFiltersFromQuery builds filters from query parameters.
// Unknown enum values are passed through so they match nothing, per the
// filter contract; malformed uuids and timestamps are client errors.
func interviewFiltersFromQuery(c *gin.Context) (repository.InterviewFilters, bool) {
	var filters repository.InterviewFilters
	if v := c.Query("character_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid character_id"})
			return filters, false
		}
		filters.CharacterID = &id
	}
	if v := c.Query("company_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company_id"})
			return filters, false
		}
		filters.CompanyID = &id
	}
	if v := c.Query("type"); v != "" {
		t := models.InterviewType(v)
		filters.Type = &t
	}
	if v := c.Query("status"); v != "" {
		s := models.InterviewStatus(v)
		filters.Status = &s
	}
	if v := c.Query("started_after"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid started_after"})
			return filters, false
		}
		filters.StartedAfter = &ts
	}
	if v := c.Query("started_before"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid started_before"})
			return filters, false
		}
		filters.StartedBefore = &ts
	}
	return filters, true
}
