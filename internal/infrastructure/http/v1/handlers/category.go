package handlers

import (
	"github.com/gin-gonic/gin"

	"gestock/internal/domain/catalogs/category"
	"gestock/internal/infrastructure/http/v1/dto"
)

// CategoryHandler handles category endpoints.
type CategoryHandler struct {
	*BaseHandler
	service *category.Service
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(base *BaseHandler, service *category.Service) *CategoryHandler {
	return &CategoryHandler{BaseHandler: base, service: service}
}

// RegisterRoutes registers category routes on the group.
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cat := category.NewCategory(req.Name, req.Description)
	if err := h.service.Create(c.Request.Context(), cat); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromCategory(cat))
}

// List handles GET /categories.
func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromCategories(cats))
}

// Get handles GET /categories/:id.
func (h *CategoryHandler) Get(c *gin.Context) {
	catID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	cat, err := h.service.GetByID(c.Request.Context(), catID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromCategory(cat))
}

// Update handles PUT /categories/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	catID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cat, err := h.service.GetByID(c.Request.Context(), catID)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.Apply(cat)
	if err := h.service.Update(c.Request.Context(), cat); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCategory(cat))
}

// Delete handles DELETE /categories/:id. Articles of the category and
// their movement history go with it.
func (h *CategoryHandler) Delete(c *gin.Context) {
	catID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), catID); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "category deleted successfully")
}
