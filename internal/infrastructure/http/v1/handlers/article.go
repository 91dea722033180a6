package handlers

import (
	"github.com/gin-gonic/gin"

	"gestock/internal/core/apperror"
	"gestock/internal/core/id"
	"gestock/internal/domain/catalogs/article"
	"gestock/internal/infrastructure/http/v1/dto"
)

// ArticleHandler handles article endpoints.
type ArticleHandler struct {
	*BaseHandler
	service *article.Service
}

// NewArticleHandler creates a new article handler.
func NewArticleHandler(base *BaseHandler, service *article.Service) *ArticleHandler {
	return &ArticleHandler{BaseHandler: base, service: service}
}

// RegisterRoutes registers article routes on the group.
func (h *ArticleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// Create handles POST /articles.
func (h *ArticleHandler) Create(c *gin.Context) {
	var req dto.CreateArticleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	catID, err := id.Parse(req.CategorieID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid categorie_id").WithDetail("categorie_id", req.CategorieID))
		return
	}

	art := article.NewArticle(req.Name, req.PriceInit, req.AvailableQuantity, catID)
	if err := h.service.Create(c.Request.Context(), art); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromArticle(art))
}

// List handles GET /articles. Categories come embedded.
func (h *ArticleHandler) List(c *gin.Context) {
	arts, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromArticles(arts))
}

// Get handles GET /articles/:id.
func (h *ArticleHandler) Get(c *gin.Context) {
	artID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	art, err := h.service.GetByID(c.Request.Context(), artID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromArticle(art))
}

// Update handles PUT /articles/:id. Accepts any subset of the fields;
// the sale price is re-derived from priceInit and available_quantity
// is untouched.
func (h *ArticleHandler) Update(c *gin.Context) {
	artID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateArticleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	art, err := h.service.GetByID(c.Request.Context(), artID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := req.Apply(art); err != nil {
		h.Error(c, err)
		return
	}
	art.Categorie = nil
	if err := h.service.Update(c.Request.Context(), art); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromArticle(art))
}

// Delete handles DELETE /articles/:id. Movement history goes with it.
func (h *ArticleHandler) Delete(c *gin.Context) {
	artID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), artID); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "article deleted successfully")
}
