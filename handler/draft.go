package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jilyoungservice-beep/contractgenius/backend/middleware"
	"github.com/jilyoungservice-beep/contractgenius/backend/model"
	"github.com/jilyoungservice-beep/contractgenius/backend/service"
)

// clauseTopics maps clause keys to the topic wording the drafting prompt
// uses — the same headings the print document shows.
var clauseTopics = map[string]string{
	model.ClausePayment:    "付款方式",
	model.ClauseDelivery:   "交付与运输",
	model.ClauseInspection: "验收标准",
	model.ClauseDispute:    "争议解决",
	model.ClauseCustom:     "补充条款",
}

type DraftHandler struct {
	store   *service.DocumentStore
	drafter *service.DraftService
}

func NewDraftHandler(draftSvc *service.DraftService) *DraftHandler {
	return &DraftHandler{
		store:   service.GetDocumentStore(),
		drafter: draftSvc,
	}
}

type draftRequest struct {
	Context string `json:"context" binding:"required"`
}

// DraftClause proposes clause wording for one clause of one document. The
// document itself is not touched: the client applies an accepted draft
// through the normal clause update, so an in-flight draft never clobbers
// concurrent edits on its own.
func (h *DraftHandler) DraftClause(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")
	key := c.Param("key")

	if !model.ValidClauseKey(key) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown clause key"})
		return
	}

	var req draftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	doc := h.store.Get(id)
	if doc == nil || doc.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	typeLabel := doc.Data.Type.Labels().DraftTypeLabel
	text := h.drafter.DraftClause(c.Request.Context(), clauseTopics[key], req.Context, typeLabel)

	c.JSON(http.StatusOK, gin.H{
		"clause": key,
		"text":   text,
	})
}
