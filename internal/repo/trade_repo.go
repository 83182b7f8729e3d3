package repo

import (
	"context"
	"time"

	"github.com/dushixiang/tradenote/internal/models"
	"github.com/go-orz/orz"
	"gorm.io/gorm"
)

func NewTradeRepo(db *gorm.DB) *TradeRepo {
	return &TradeRepo{
		Repository: orz.NewRepository[models.Trade, string](db),
	}
}

type TradeRepo struct {
	orz.Repository[models.Trade, string]
}

// FindAllOrderByEntryDate 获取全部交易，按开仓时间倒序
func (r TradeRepo) FindAllOrderByEntryDate(ctx context.Context) ([]models.Trade, error) {
	var trades []models.Trade
	db := r.GetDB(ctx)
	err := db.Table(r.GetTableName()).
		Order("entry_date DESC").
		Find(&trades).Error
	return trades, err
}

// FindByDateRange 获取开仓时间落在[start, end]内的交易，升序
func (r TradeRepo) FindByDateRange(ctx context.Context, start, end time.Time) ([]models.Trade, error) {
	var trades []models.Trade
	db := r.GetDB(ctx)
	err := db.Table(r.GetTableName()).
		Where("entry_date >= ? AND entry_date <= ?", start, end).
		Order("entry_date ASC").
		Find(&trades).Error
	return trades, err
}

// FindRecentTrades 获取最近的交易记录
func (r TradeRepo) FindRecentTrades(ctx context.Context, limit int) ([]models.Trade, error) {
	var trades []models.Trade
	db := r.GetDB(ctx)
	err := db.Table(r.GetTableName()).
		Order("entry_date DESC").
		Limit(limit).
		Find(&trades).Error
	return trades, err
}
