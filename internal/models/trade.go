package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// 交易方向
const (
	DirectionLong  = "LONG"
	DirectionShort = "SHORT"
)

// 交易状态
const (
	StatusOpen      = "OPEN" // 未平仓
	StatusWin       = "WIN"
	StatusLoss      = "LOSS"
	StatusBreakEven = "BE" // 保本，仅旧版出场价路径会产生
)

// Trade 交易日志记录
//
// 存储中共存两种形态：旧版按出场价结算（只有pl），
// 新版按申报结果结算（带止损止盈和双币种金额）。
// 可选的数值字段用指针区分"未填"和"零值"。
type Trade struct {
	ID        string `gorm:"primaryKey;size:26" json:"id"`
	Ticker    string `gorm:"size:20;not null;index" json:"ticker"` // 品种符号，写入时统一大写
	Market    string `gorm:"size:20" json:"market,omitempty"`      // 如 NASDAQ、CRYPTO
	Direction string `gorm:"size:10;not null" json:"direction"`    // LONG/SHORT
	Status    string `gorm:"size:10;not null;index" json:"status"` // OPEN/WIN/LOSS/BE

	EntryPrice float64  `gorm:"type:decimal(20,8);not null" json:"entry_price"`
	ExitPrice  *float64 `gorm:"type:decimal(20,8)" json:"exit_price,omitempty"` // 旧版形态
	StopLoss   *float64 `gorm:"type:decimal(20,8)" json:"stop_loss,omitempty"`
	TakeProfit *float64 `gorm:"type:decimal(20,8)" json:"take_profit,omitempty"`
	Quantity   float64  `gorm:"type:decimal(20,8);not null" json:"quantity"` // 手数

	// 已实现盈亏，带符号（负为亏损）
	Pl        *float64 `gorm:"type:decimal(20,8)" json:"pl,omitempty"`
	PlPercent *float64 `gorm:"type:decimal(20,8)" json:"pl_percent,omitempty"`
	PlUsd     *float64 `gorm:"type:decimal(20,8)" json:"pl_usd,omitempty"`
	PlInr     *float64 `gorm:"type:decimal(20,8)" json:"pl_inr,omitempty"`

	// 开仓时计算的风险回报预估，恒为非负
	RiskAmount      *float64 `gorm:"type:decimal(20,8)" json:"risk_amount,omitempty"`
	RewardAmount    *float64 `gorm:"type:decimal(20,8)" json:"reward_amount,omitempty"`
	RiskAmountInr   *float64 `gorm:"type:decimal(20,8)" json:"risk_amount_inr,omitempty"`
	RewardAmountInr *float64 `gorm:"type:decimal(20,8)" json:"reward_amount_inr,omitempty"`
	RiskReward      *float64 `gorm:"type:decimal(20,8)" json:"risk_reward,omitempty"` // 风险为0时记0

	ExchangeRate float64 `gorm:"type:decimal(20,8)" json:"exchange_rate"` // 开仓时的USD→INR快照，不回溯更新

	EntryDate time.Time  `gorm:"not null;index" json:"entry_date"` // 所有时序计算的排序键
	ExitDate  *time.Time `gorm:"" json:"exit_date,omitempty"`

	TimeFrame string                      `gorm:"size:10" json:"time_frame,omitempty"` // 如 1h、4h、1d
	Notes     string                      `gorm:"type:text" json:"notes,omitempty"`
	ImageID   string                      `gorm:"size:26" json:"image_id,omitempty"` // 已废弃，兼容旧数据
	ImageIds  datatypes.JSONSlice[string] `gorm:"type:json" json:"image_ids,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName 指定表名
func (Trade) TableName() string {
	return "trades"
}

// NormalizeTicker 写入前统一大写
func (t *Trade) NormalizeTicker() {
	t.Ticker = strings.ToUpper(strings.TrimSpace(t.Ticker))
}

// AllImageIds 合并新旧两代截图字段，旧的单图字段排在前面
func (t *Trade) AllImageIds() []string {
	ids := make([]string, 0, len(t.ImageIds)+1)
	if t.ImageID != "" {
		ids = append(ids, t.ImageID)
	}
	for _, id := range t.ImageIds {
		if id != t.ImageID {
			ids = append(ids, id)
		}
	}
	return ids
}
