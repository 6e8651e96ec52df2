package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jilyoungservice-beep/contractgenius/backend/middleware"
	"github.com/jilyoungservice-beep/contractgenius/backend/model"
	"github.com/jilyoungservice-beep/contractgenius/backend/pkg/logger"
	"github.com/jilyoungservice-beep/contractgenius/backend/service"
)

type DocumentHandler struct {
	store  *service.DocumentStore
	render *service.RenderService
	now    func() time.Time
}

func NewDocumentHandler(renderSvc *service.RenderService) *DocumentHandler {
	return &DocumentHandler{
		store:  service.GetDocumentStore(),
		render: renderSvc,
		now:    time.Now,
	}
}

// documentResponse is the JSON shape every read and mutation returns: the
// aggregate, the label projection for its type, and freshly derived amounts.
// Totals are never stored, so the client can never see a stale one.
func documentResponse(doc *service.Document) gin.H {
	lines := make([]gin.H, len(doc.Data.Items))
	for i, item := range doc.Data.Items {
		lines[i] = gin.H{
			"item_id": item.ID,
			"amount":  model.LineAmount(item),
		}
	}
	return gin.H{
		"id":           doc.ID,
		"data":         doc.Data,
		"labels":       doc.Data.Type.Labels(),
		"line_amounts": lines,
		"total_amount": model.TotalAmount(doc.Data),
		"created_at":   doc.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		"updated_at":   doc.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// Create starts a new editing session from the initial template
func (h *DocumentHandler) Create(c *gin.Context) {
	tenant := middleware.GetTenant(c)

	doc := &service.Document{
		ID:        uuid.New().String(),
		Tenant:    tenant,
		Data:      model.NewContractData(h.now()),
		CreatedAt: h.now(),
	}
	h.store.Save(doc)

	logger.Info(c.Request.Context(), "document session created",
		"document_id", doc.ID,
		"tenant", tenant,
	)

	c.JSON(http.StatusOK, documentResponse(doc))
}

// List returns all sessions for the current tenant
func (h *DocumentHandler) List(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	docs := h.store.GetByTenant(tenant)

	// Return without the aggregate for list view
	result := make([]gin.H, len(docs))
	for i, doc := range docs {
		result[i] = gin.H{
			"id":              doc.ID,
			"type":            doc.Data.Type,
			"contract_number": doc.Data.ContractNumber,
			"date":            doc.Data.Date,
			"total_amount":    model.TotalAmount(doc.Data),
			"created_at":      doc.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			"updated_at":      doc.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	c.JSON(http.StatusOK, gin.H{"documents": result})
}

// getOwned fetches a session and enforces tenant ownership. Responds 404 and
// returns nil when the session is missing or belongs to someone else.
func (h *DocumentHandler) getOwned(c *gin.Context) *service.Document {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	doc := h.store.Get(id)
	if doc == nil || doc.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return nil
	}
	return doc
}

// Get returns a single session with the full aggregate
func (h *DocumentHandler) Get(c *gin.Context) {
	doc := h.getOwned(c)
	if doc == nil {
		return
	}
	c.JSON(http.StatusOK, documentResponse(doc))
}

// Delete ends a session
func (h *DocumentHandler) Delete(c *gin.Context) {
	doc := h.getOwned(c)
	if doc == nil {
		return
	}

	h.store.Delete(doc.ID)

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}

// mutate applies one pure model mutation to an owned session and returns the
// updated aggregate. Logical no-ops (missing item id, unknown field) still
// return 200 with the unchanged document.
func (h *DocumentHandler) mutate(c *gin.Context, fn func(model.ContractData) model.ContractData) {
	doc := h.getOwned(c)
	if doc == nil {
		return
	}

	updated := h.store.Apply(doc.ID, fn)
	if updated == nil {
		// Session evicted between the ownership check and the mutation
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	c.JSON(http.StatusOK, documentResponse(updated))
}

type setTypeRequest struct {
	Type model.ContractType `json:"type" binding:"required"`
}

// SetType switches the contract variant. Only labels change downstream;
// text already entered is kept.
func (h *DocumentHandler) SetType(c *gin.Context) {
	var req setTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if !req.Type.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown contract type"})
		return
	}

	h.mutate(c, func(d model.ContractData) model.ContractData {
		return model.SetType(d, req.Type)
	})
}

type fieldValueRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// UpdateParty replaces one field of one party
func (h *DocumentHandler) UpdateParty(c *gin.Context) {
	side := model.PartySide(c.Param("side"))
	if !side.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown party side"})
		return
	}

	var req fieldValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	h.mutate(c, func(d model.ContractData) model.ContractData {
		return model.UpdateParty(d, side, req.Field, req.Value)
	})
}

type clauseValueRequest struct {
	Value string `json:"value"`
}

// UpdateClause replaces one named clause text. This is also how accepted
// drafting-assistant results land on the document: last write wins.
func (h *DocumentHandler) UpdateClause(c *gin.Context) {
	key := c.Param("key")
	if !model.ValidClauseKey(key) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown clause key"})
		return
	}

	var req clauseValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	h.mutate(c, func(d model.ContractData) model.ContractData {
		return model.UpdateClause(d, key, req.Value)
	})
}

// AddItem appends a blank line item with a server-minted id
func (h *DocumentHandler) AddItem(c *gin.Context) {
	itemID := uuid.New().String()
	h.mutate(c, func(d model.ContractData) model.ContractData {
		return model.AddItem(d, itemID)
	})
}

// UpdateItem replaces one field of one line item. Values arrive as strings;
// numeric fields are normalized server-side (invalid input becomes 0).
func (h *DocumentHandler) UpdateItem(c *gin.Context) {
	itemID := c.Param("itemId")

	var req fieldValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	h.mutate(c, func(d model.ContractData) model.ContractData {
		return model.UpdateItem(d, itemID, req.Field, req.Value)
	})
}

// RemoveItem drops one line item. A missing id is a no-op, not an error.
func (h *DocumentHandler) RemoveItem(c *gin.Context) {
	itemID := c.Param("itemId")
	h.mutate(c, func(d model.ContractData) model.ContractData {
		return model.RemoveItem(d, itemID)
	})
}

// Print renders the session as a print-ready A4 HTML document
func (h *DocumentHandler) Print(c *gin.Context) {
	doc := h.getOwned(c)
	if doc == nil {
		return
	}

	html, err := h.render.RenderHTML(doc.Data)
	if err != nil {
		logger.Error(c.Request.Context(), "print rendering failed",
			"document_id", doc.ID,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render document"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}
