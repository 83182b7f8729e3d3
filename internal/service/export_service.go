package service

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/dushixiang/tradenote/internal/models"
	"github.com/gocarina/gocsv"
	"go.uber.org/zap"
)

// ExportService 交易记录CSV导出服务
type ExportService struct {
	logger       *zap.Logger
	tradeService *TradeService
}

func NewExportService(tradeService *TradeService, logger *zap.Logger) *ExportService {
	return &ExportService{
		logger:       logger,
		tradeService: tradeService,
	}
}

// tradeCSVRow CSV导出行，可选字段缺失时输出空列
type tradeCSVRow struct {
	ID           string  `csv:"id"`
	Ticker       string  `csv:"ticker"`
	Market       string  `csv:"market"`
	Direction    string  `csv:"direction"`
	Status       string  `csv:"status"`
	EntryPrice   float64 `csv:"entry_price"`
	ExitPrice    string  `csv:"exit_price"`
	StopLoss     string  `csv:"stop_loss"`
	TakeProfit   string  `csv:"take_profit"`
	Quantity     float64 `csv:"quantity"`
	Pl           string  `csv:"pl"`
	PlUsd        string  `csv:"pl_usd"`
	PlInr        string  `csv:"pl_inr"`
	RiskReward   string  `csv:"risk_reward"`
	ExchangeRate float64 `csv:"exchange_rate"`
	EntryDate    string  `csv:"entry_date"`
	ExitDate     string  `csv:"exit_date"`
	TimeFrame    string  `csv:"time_frame"`
	Notes        string  `csv:"notes"`
}

func optionalNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// ExportCSV 导出开仓时间在[start, end]内的交易为CSV
func (s *ExportService) ExportCSV(ctx context.Context, start, end time.Time, w io.Writer) (int, error) {
	trades, err := s.tradeService.ListTradesInRange(ctx, start, end)
	if err != nil {
		return 0, err
	}

	rows := make([]tradeCSVRow, 0, len(trades))
	for _, trade := range trades {
		rows = append(rows, toCSVRow(trade))
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		return 0, err
	}

	s.logger.Info("trades exported", zap.Int("count", len(rows)))
	return len(rows), nil
}

func toCSVRow(trade models.Trade) tradeCSVRow {
	row := tradeCSVRow{
		ID:           trade.ID,
		Ticker:       trade.Ticker,
		Market:       trade.Market,
		Direction:    trade.Direction,
		Status:       trade.Status,
		EntryPrice:   trade.EntryPrice,
		ExitPrice:    optionalNumber(trade.ExitPrice),
		StopLoss:     optionalNumber(trade.StopLoss),
		TakeProfit:   optionalNumber(trade.TakeProfit),
		Quantity:     trade.Quantity,
		Pl:           optionalNumber(trade.Pl),
		PlUsd:        optionalNumber(trade.PlUsd),
		PlInr:        optionalNumber(trade.PlInr),
		RiskReward:   optionalNumber(trade.RiskReward),
		ExchangeRate: trade.ExchangeRate,
		EntryDate:    trade.EntryDate.Format(time.RFC3339),
		TimeFrame:    trade.TimeFrame,
		Notes:        trade.Notes,
	}
	if trade.ExitDate != nil {
		row.ExitDate = trade.ExitDate.Format(time.RFC3339)
	}
	return row
}
