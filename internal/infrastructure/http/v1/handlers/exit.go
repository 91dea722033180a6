package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gestock/internal/domain/movements"
	"gestock/internal/domain/stats"
	"gestock/internal/infrastructure/http/v1/dto"
)

// ExitHandler handles outbound stock movement endpoints.
type ExitHandler struct {
	*BaseHandler
	service *movements.ExitService
	stats   *stats.Service
}

// NewExitHandler creates a new outbound movement handler.
func NewExitHandler(base *BaseHandler, service *movements.ExitService, statsService *stats.Service) *ExitHandler {
	return &ExitHandler{BaseHandler: base, service: service, stats: statsService}
}

// RegisterRoutes registers outbound movement routes on the group.
func (h *ExitHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Record)
	rg.POST("/batch", h.RecordBatch)
	rg.GET("/statistics", h.Statistics)
}

// Record handles POST /stock/exits. An insufficient stock error comes
// back through the error middleware as 422 with the available quantity.
func (h *ExitHandler) Record(c *gin.Context) {
	var req dto.MovementLineRequest
	if !h.BindJSON(c, &req) {
		return
	}

	line, err := req.ToLine()
	if err != nil {
		h.Error(c, err)
		return
	}

	exit, err := h.service.Record(c.Request.Context(), line)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromExit(exit))
}

// RecordBatch handles POST /stock/exits/batch. A batch with any
// uncoverable line persists nothing; the response then carries every
// line error plus the outcome the batch would have had.
func (h *ExitHandler) RecordBatch(c *gin.Context) {
	var req dto.BatchMovementRequest
	if !h.BindJSON(c, &req) {
		return
	}

	lines, err := req.ToLines()
	if err != nil {
		h.Error(c, err)
		return
	}

	result, err := h.service.RecordBatch(c.Request.Context(), lines)
	if err != nil {
		h.Error(c, err)
		return
	}

	resp := dto.FromBatchExitResult(result)
	if result.RolledBack {
		c.JSON(http.StatusBadRequest, resp)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Statistics handles GET /stock/exits/statistics.
func (h *ExitHandler) Statistics(c *gin.Context) {
	var query dto.StatsQuery
	if !h.BindQuery(c, &query) {
		return
	}

	filter, err := query.ToFilter()
	if err != nil {
		h.Error(c, err)
		return
	}

	summary, err := h.stats.Summarize(c.Request.Context(), stats.KindOutbound, filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, summary)
}
