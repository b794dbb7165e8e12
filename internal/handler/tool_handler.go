package handler

import (
	"errors"
	"net/http"

	"ai-tools-api/internal/services"
	"ai-tools-api/internal/transport/httpdto"
	apperrors "ai-tools-api/pkg/errors"
	"ai-tools-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ToolHandler serves the read-only AI tools catalog.
type ToolHandler struct {
	service *services.ToolService
	logger  *logger.Logger
}

func NewToolHandler(service *services.ToolService, l *logger.Logger) *ToolHandler {
	return &ToolHandler{service: service, logger: l}
}

// List handles GET /api/ai-tools?category=&sort=
func (h *ToolHandler) List(c *gin.Context) {
	category := c.Query("category")
	sort := c.DefaultQuery("sort", services.DefaultSortField)

	tools, err := h.service.List(c.Request.Context(), category, sort)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewToolDTOs(tools))
}

// Categories handles GET /api/ai-tools/categories
func (h *ToolHandler) Categories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetByID handles GET /api/ai-tools/:id
func (h *ToolHandler) GetByID(c *gin.Context) {
	t, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, httpdto.NewMessageResponse("AI tool not found"))
			return
		}
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewToolDTO(t))
}

func (h *ToolHandler) writeError(c *gin.Context, err error) {
	status := services.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		if h.logger != nil {
			h.logger.WithContext(c.Request.Context()).Sugar().Errorf("tool handler error: %v", err)
		}
		c.JSON(status, httpdto.NewMessageResponse("Server error"))
		return
	}
	c.JSON(status, httpdto.NewMessageResponse(err.Error()))
}
