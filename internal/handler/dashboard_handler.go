package handler

import (
	"net/http"

	"github.com/dushixiang/tradenote/internal/service"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// DashboardHandler 仪表盘处理器
type DashboardHandler struct {
	logger           *zap.Logger
	dashboardService *service.DashboardService
	rateService      *service.RateService
}

// NewDashboardHandler 创建仪表盘处理器
func NewDashboardHandler(logger *zap.Logger, dashboardService *service.DashboardService, rateService *service.RateService) *DashboardHandler {
	return &DashboardHandler{
		logger:           logger,
		dashboardService: dashboardService,
		rateService:      rateService,
	}
}

// GetStats 获取仪表盘统计
// GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.dashboardService.GetStats(ctx)
	if err != nil {
		h.logger.Error("failed to aggregate dashboard stats", zap.Error(err))
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// GetExchangeRate 获取当前USD/INR汇率
// GET /api/exchange-rate
func (h *DashboardHandler) GetExchangeRate(c echo.Context) error {
	return c.JSON(http.StatusOK, h.rateService.Info())
}

// RegisterRoutes 注册路由（需要认证）
func (h *DashboardHandler) RegisterRoutes(g *echo.Group) {
	dashboard := g.Group("/dashboard")
	dashboard.GET("/stats", h.GetStats)

	g.GET("/exchange-rate", h.GetExchangeRate)
}
