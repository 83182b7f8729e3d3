package handler

import (
	"net/http"

	"github.com/dushixiang/tradenote/internal/service"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PreferenceHandler 用户偏好处理器
type PreferenceHandler struct {
	logger            *zap.Logger
	preferenceService *service.PreferenceService
}

// NewPreferenceHandler 创建偏好处理器
func NewPreferenceHandler(logger *zap.Logger, preferenceService *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{
		logger:            logger,
		preferenceService: preferenceService,
	}
}

// GetPreference 获取当前用户偏好
// GET /api/preferences
func (h *PreferenceHandler) GetPreference(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	preference, err := h.preferenceService.GetPreference(ctx, userID)
	if err != nil {
		h.logger.Error("failed to get preference", zap.Error(err))
		return err
	}

	return c.JSON(http.StatusOK, preference)
}

// UpdatePreference 更新当前用户偏好
// PUT /api/preferences
func (h *PreferenceHandler) UpdatePreference(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	var req service.UpdatePreferenceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "请求参数错误",
		})
	}

	preference, err := h.preferenceService.UpdatePreference(ctx, userID, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, preference)
}

// RegisterRoutes 注册路由（需要认证）
func (h *PreferenceHandler) RegisterRoutes(g *echo.Group) {
	preferences := g.Group("/preferences")

	preferences.GET("", h.GetPreference)
	preferences.PUT("", h.UpdatePreference)
}
