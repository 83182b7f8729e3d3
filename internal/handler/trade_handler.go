package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dushixiang/tradenote/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// TradeHandler 交易日志处理器
type TradeHandler struct {
	logger        *zap.Logger
	tradeService  *service.TradeService
	exportService *service.ExportService
}

// NewTradeHandler 创建交易日志处理器
func NewTradeHandler(logger *zap.Logger, tradeService *service.TradeService, exportService *service.ExportService) *TradeHandler {
	return &TradeHandler{
		logger:        logger,
		tradeService:  tradeService,
		exportService: exportService,
	}
}

// AddTrade 录入交易
// POST /api/trades
func (h *TradeHandler) AddTrade(c echo.Context) error {
	ctx := c.Request().Context()

	var req service.AddTradeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "请求参数错误",
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "品种、方向、入场价和手数不能为空",
		})
	}

	trade, err := h.tradeService.AddTrade(ctx, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, trade)
}

// ListTrades 获取交易列表
// GET /api/trades?month=9&year=2026
func (h *TradeHandler) ListTrades(c echo.Context) error {
	ctx := c.Request().Context()

	month := cast.ToInt(c.QueryParam("month"))
	year := cast.ToInt(c.QueryParam("year"))

	trades, err := h.tradeService.ListTrades(ctx, month, year)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, trades)
}

// GetTrade 获取单笔交易
// GET /api/trades/:id
func (h *TradeHandler) GetTrade(c echo.Context) error {
	ctx := c.Request().Context()

	trade, err := h.tradeService.GetTrade(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, trade)
}

// CloseTrade 对未平仓交易申报结果
// POST /api/trades/:id/close
func (h *TradeHandler) CloseTrade(c echo.Context) error {
	ctx := c.Request().Context()

	var req service.CloseTradeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "请求参数错误",
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "结果只能是WIN或LOSS",
		})
	}

	trade, err := h.tradeService.CloseTrade(ctx, c.Param("id"), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, trade)
}

// DeleteTrade 删除交易
// DELETE /api/trades/:id
func (h *TradeHandler) DeleteTrade(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.tradeService.DeleteTrade(ctx, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "删除成功",
	})
}

// ListTradesInRange 获取日期区间内的交易，升序
// GET /api/trades/range?start=2026-01-01&end=2026-03-31
func (h *TradeHandler) ListTradesInRange(c echo.Context) error {
	ctx := c.Request().Context()

	start, end, err := parseDateRange(c.QueryParam("start"), c.QueryParam("end"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "日期格式错误，应为YYYY-MM-DD",
		})
	}

	trades, err := h.tradeService.ListTradesInRange(ctx, start, end)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, trades)
}

// ExportTrades 导出CSV
// GET /api/trades/export?start=2026-01-01&end=2026-12-31
func (h *TradeHandler) ExportTrades(c echo.Context) error {
	ctx := c.Request().Context()

	start, end, err := parseDateRange(c.QueryParam("start"), c.QueryParam("end"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "日期格式错误，应为YYYY-MM-DD",
		})
	}

	fileName := fmt.Sprintf("trades-%s.csv", time.Now().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	c.Response().WriteHeader(http.StatusOK)

	if _, err := h.exportService.ExportCSV(ctx, start, end, c.Response()); err != nil {
		h.logger.Error("failed to export trades", zap.Error(err))
		return err
	}
	return nil
}

// parseDateRange 解析查询日期区间，缺省为最近一年
func parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	now := time.Now()
	start := now.AddDate(-1, 0, 0)
	end := now

	if startStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = parsed
	}
	if endStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		// 区间右端取到当天结束
		end = parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return start, end, nil
}

// RegisterRoutes 注册路由（需要认证）
func (h *TradeHandler) RegisterRoutes(g *echo.Group) {
	trades := g.Group("/trades")

	trades.POST("", h.AddTrade)
	trades.GET("", h.ListTrades)
	trades.GET("/range", h.ListTradesInRange)
	trades.GET("/export", h.ExportTrades)
	trades.GET("/:id", h.GetTrade)
	trades.POST("/:id/close", h.CloseTrade)
	trades.DELETE("/:id", h.DeleteTrade)
}
