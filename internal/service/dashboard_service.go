package service

import (
	"context"

	"github.com/dushixiang/tradenote/internal/models"
	"github.com/dushixiang/tradenote/internal/repo"
	"github.com/dushixiang/tradenote/pkg/stats"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DashboardService 仪表盘统计服务
type DashboardService struct {
	logger    *zap.Logger
	tradeRepo *repo.TradeRepo
}

func NewDashboardService(db *gorm.DB, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		logger:    logger,
		tradeRepo: repo.NewTradeRepo(db),
	}
}

// Normalize 把交易记录归一成统计记录
//
// 旧版记录只有pl没有plUsd/plInr，按 plUsd ?? pl ?? 0 和 plInr ?? pl ?? 0 回退。
// 旧版的美元盈亏直接当卢比用，这是历史数据的已知误差，统计层不做汇率换算。
func Normalize(trade models.Trade) stats.Record {
	var plUsd, plInr float64
	switch {
	case trade.PlUsd != nil:
		plUsd = *trade.PlUsd
	case trade.Pl != nil:
		plUsd = *trade.Pl
	}
	switch {
	case trade.PlInr != nil:
		plInr = *trade.PlInr
	case trade.Pl != nil:
		plInr = *trade.Pl
	}
	return stats.Record{
		ID:        trade.ID,
		Ticker:    trade.Ticker,
		Status:    trade.Status,
		PlUsd:     plUsd,
		PlInr:     plInr,
		EntryDate: trade.EntryDate,
	}
}

// GetStats 全量统计
func (s *DashboardService) GetStats(ctx context.Context) (stats.Stats, error) {
	trades, err := s.tradeRepo.FindAll(ctx)
	if err != nil {
		return stats.Stats{}, err
	}
	records := make([]stats.Record, 0, len(trades))
	for _, trade := range trades {
		records = append(records, Normalize(trade))
	}
	return stats.Aggregate(records), nil
}
