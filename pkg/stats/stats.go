// Package stats 仪表盘统计聚合
//
// 对已归一化的交易记录集合做一次遍历，产出胜率、盈亏比、连胜等指标。
// 输入为空时返回全零结果，永远不报错。
package stats

import (
	"sort"
	"time"
)

// Status 交易状态
const (
	StatusOpen      = "OPEN"
	StatusWin       = "WIN"
	StatusLoss      = "LOSS"
	StatusBreakEven = "BE"
)

// Record 聚合器消费的规范化交易记录
//
// 存储中新旧两种形态（出场价结算 / 结果申报）统一映射到这里，
// PlUsd/PlInr 已按 plInr ?? pl ?? 0 的规则补齐，聚合逻辑不再做兜底。
type Record struct {
	ID        string
	Ticker    string
	Status    string
	PlUsd     float64
	PlInr     float64
	EntryDate time.Time
}

// ChartPoint 图表序列中的一个点，累计曲线由前端自行累加
type ChartPoint struct {
	Value float64   `json:"value"` // INR优先，无则回退USD口径的pl
	Date  time.Time `json:"date"`
	Label string    `json:"label"` // 短日期，如 Jan 2
}

// Stats 仪表盘统计结果
type Stats struct {
	TotalTrades int     `json:"total_trades"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	BreakEven   int     `json:"break_even"`
	WinRate     float64 `json:"win_rate"` // 百分比

	TotalPlUsd float64 `json:"total_pl_usd"`
	TotalPlInr float64 `json:"total_pl_inr"`
	AvgWinUsd  float64 `json:"avg_win_usd"`
	AvgWinInr  float64 `json:"avg_win_inr"`
	AvgLossUsd float64 `json:"avg_loss_usd"` // 取正值
	AvgLossInr float64 `json:"avg_loss_inr"`

	// ProfitFactor 总盈利/总亏损。有盈利无亏损时固定为哨兵值100，
	// 表示"无限好"，避免返回Inf，前端依赖该约定。
	ProfitFactor float64 `json:"profit_factor"`

	BestRun int `json:"best_run"` // 最长连胜

	ChartData    []ChartPoint `json:"chart_data"`
	RecentTrades []Record     `json:"recent_trades"` // 最近两笔，新的在前
}

// Aggregate 聚合全部交易记录
//
// 除连胜和图表序列外，所有指标与输入顺序无关。
// 连胜计算前先按开仓时间升序稳定排序，时间相同时保持输入顺序。
func Aggregate(records []Record) Stats {
	trades := make([]Record, len(records))
	copy(trades, records)
	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].EntryDate.Before(trades[j].EntryDate)
	})

	var (
		totalPlUsd, totalPlInr     float64
		wins, losses, breakEven    int
		totalWinUsd, totalWinInr   float64
		totalLossUsd, totalLossInr float64
		currentRun, bestRun        int
	)

	chartData := make([]ChartPoint, 0, len(trades))

	for _, t := range trades {
		totalPlUsd += t.PlUsd
		totalPlInr += t.PlInr

		switch t.Status {
		case StatusWin:
			wins++
			totalWinUsd += t.PlUsd
			totalWinInr += t.PlInr
			currentRun++
			if currentRun > bestRun {
				bestRun = currentRun
			}
		case StatusLoss:
			losses++
			totalLossUsd += abs(t.PlUsd)
			totalLossInr += abs(t.PlInr)
			currentRun = 0
		default:
			// 保本或未平仓都会终结连胜：连胜只统计连续的已实现盈利
			breakEven++
			currentRun = 0
		}

		chartData = append(chartData, ChartPoint{
			Value: t.PlInr,
			Date:  t.EntryDate,
			Label: t.EntryDate.Format("Jan 2"),
		})
	}

	totalTrades := len(trades)

	winRate := 0.0
	if totalTrades > 0 {
		winRate = float64(wins) / float64(totalTrades) * 100
	}

	avgWinUsd, avgWinInr := 0.0, 0.0
	if wins > 0 {
		avgWinUsd = totalWinUsd / float64(wins)
		avgWinInr = totalWinInr / float64(wins)
	}

	avgLossUsd, avgLossInr := 0.0, 0.0
	if losses > 0 {
		avgLossUsd = totalLossUsd / float64(losses)
		avgLossInr = totalLossInr / float64(losses)
	}

	// 盈亏比按USD口径计算，与旧版单一pl字段的口径一致
	profitFactor := 0.0
	if totalLossUsd > 0 {
		profitFactor = totalWinUsd / totalLossUsd
	} else if totalWinUsd > 0 {
		profitFactor = 100
	}

	// 最近两笔，新的在前
	recent := make([]Record, 0, 2)
	for i := len(trades) - 1; i >= 0 && len(recent) < 2; i-- {
		recent = append(recent, trades[i])
	}

	return Stats{
		TotalTrades:  totalTrades,
		Wins:         wins,
		Losses:       losses,
		BreakEven:    breakEven,
		WinRate:      winRate,
		TotalPlUsd:   totalPlUsd,
		TotalPlInr:   totalPlInr,
		AvgWinUsd:    avgWinUsd,
		AvgWinInr:    avgWinInr,
		AvgLossUsd:   avgLossUsd,
		AvgLossInr:   avgLossInr,
		ProfitFactor: profitFactor,
		BestRun:      bestRun,
		ChartData:    chartData,
		RecentTrades: recent,
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
