package handler

import (
	"net/http"

	"github.com/dushixiang/tradenote/internal/service"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UploadHandler 截图上传处理器
type UploadHandler struct {
	logger         *zap.Logger
	storageService *service.StorageService
}

// NewUploadHandler 创建上传处理器
func NewUploadHandler(logger *zap.Logger, storageService *service.StorageService) *UploadHandler {
	return &UploadHandler{
		logger:         logger,
		storageService: storageService,
	}
}

// Upload 上传图表截图，返回附件ID，录入交易时通过image_ids关联
// POST /api/uploads
func (h *UploadHandler) Upload(c echo.Context) error {
	ctx := c.Request().Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "缺少上传文件",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "文件读取失败",
		})
	}
	defer src.Close()

	attachment, err := h.storageService.Save(ctx,
		fileHeader.Filename,
		fileHeader.Header.Get(echo.HeaderContentType),
		fileHeader.Size,
		src)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, attachment)
}

// Download 获取截图内容
// GET /api/uploads/:id
func (h *UploadHandler) Download(c echo.Context) error {
	ctx := c.Request().Context()

	attachment, f, err := h.storageService.Open(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	defer f.Close()

	return c.Stream(http.StatusOK, attachment.ContentType, f)
}

// Delete 删除未关联交易的截图
// DELETE /api/uploads/:id
func (h *UploadHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.storageService.DeleteAttachment(ctx, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "删除成功",
	})
}

// RegisterRoutes 注册路由（需要认证）
func (h *UploadHandler) RegisterRoutes(g *echo.Group) {
	uploads := g.Group("/uploads")

	uploads.POST("", h.Upload)
	uploads.GET("/:id", h.Download)
	uploads.DELETE("/:id", h.Delete)
}
