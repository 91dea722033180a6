package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gestock/internal/domain/movements"
	"gestock/internal/domain/stats"
	"gestock/internal/infrastructure/http/v1/dto"
)

// EntryHandler handles inbound stock movement endpoints.
type EntryHandler struct {
	*BaseHandler
	service *movements.EntryService
	stats   *stats.Service
}

// NewEntryHandler creates a new inbound movement handler.
func NewEntryHandler(base *BaseHandler, service *movements.EntryService, statsService *stats.Service) *EntryHandler {
	return &EntryHandler{BaseHandler: base, service: service, stats: statsService}
}

// RegisterRoutes registers inbound movement routes on the group.
func (h *EntryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Record)
	rg.POST("/batch", h.RecordBatch)
	rg.GET("/statistics", h.Statistics)
}

// Record handles POST /stock/entries.
func (h *EntryHandler) Record(c *gin.Context) {
	var req dto.MovementLineRequest
	if !h.BindJSON(c, &req) {
		return
	}

	line, err := req.ToLine()
	if err != nil {
		h.Error(c, err)
		return
	}

	entry, err := h.service.Record(c.Request.Context(), line)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromEntry(entry))
}

// RecordBatch handles POST /stock/entries/batch.
func (h *EntryHandler) RecordBatch(c *gin.Context) {
	var req dto.BatchMovementRequest
	if !h.BindJSON(c, &req) {
		return
	}

	lines, err := req.ToLines()
	if err != nil {
		h.Error(c, err)
		return
	}

	entries, err := h.service.RecordBatch(c.Request.Context(), lines)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.BatchEntryResponse{
		Success: true,
		Entries: dto.FromEntries(entries),
	})
}

// Statistics handles GET /stock/entries/statistics.
func (h *EntryHandler) Statistics(c *gin.Context) {
	var query dto.StatsQuery
	if !h.BindQuery(c, &query) {
		return
	}

	filter, err := query.ToFilter()
	if err != nil {
		h.Error(c, err)
		return
	}

	summary, err := h.stats.Summarize(c.Request.Context(), stats.KindInbound, filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, summary)
}
