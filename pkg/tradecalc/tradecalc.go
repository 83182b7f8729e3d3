// Package tradecalc 交易风险回报与盈亏计算
//
// 全部为纯函数：输入开仓参数和外部提供的汇率，输出风险/回报/盈亏金额。
// 汇率由调用方负责获取，本包不做任何IO。
package tradecalc

import (
	"math"

	"github.com/dushixiang/tradenote/pkg/instrument"
)

// Direction 交易方向
type Direction string

const (
	DirectionLong  Direction = "LONG"  // 做多，价格上涨盈利
	DirectionShort Direction = "SHORT" // 做空，价格下跌盈利
)

// Outcome 用户申报的平仓结果
type Outcome string

const (
	OutcomeWin  Outcome = "WIN"  // 止盈被触发
	OutcomeLoss Outcome = "LOSS" // 止损被触发
)

// Input 开仓参数
type Input struct {
	Ticker       string
	Direction    Direction
	EntryPrice   float64
	StopLoss     float64
	TakeProfit   float64
	LotSize      float64
	ExchangeRate float64 // USD→INR，开仓时快照
}

// Projection 开仓时计算出的风险回报预估
type Projection struct {
	ContractSize    float64 `json:"contract_size"`
	RiskAmount      float64 `json:"risk_amount"`       // USD，始终非负
	RewardAmount    float64 `json:"reward_amount"`     // USD，始终非负
	RiskAmountInr   float64 `json:"risk_amount_inr"`   // INR
	RewardAmountInr float64 `json:"reward_amount_inr"` // INR
	RiskReward      float64 `json:"risk_reward"`       // 回报/风险比，风险为0时为0
}

// Settlement 平仓后的已实现盈亏
type Settlement struct {
	Status string  `json:"status"` // WIN / LOSS
	Pl     float64 `json:"pl"`     // USD，带符号
	PlUsd  float64 `json:"pl_usd"`
	PlInr  float64 `json:"pl_inr"`
}

// Project 计算开仓时的风险回报预估
//
// 止损止盈距离取绝对值：方向只决定止损和止盈在入场价的哪一侧，
// 用户录入时已经放对位置，幅度公式与方向无关。
func Project(in Input) Projection {
	contractSize := instrument.Resolve(in.Ticker)

	riskDistance := math.Abs(in.EntryPrice - in.StopLoss)
	rewardDistance := math.Abs(in.TakeProfit - in.EntryPrice)

	riskAmount := riskDistance * contractSize * in.LotSize
	rewardAmount := rewardDistance * contractSize * in.LotSize

	riskReward := 0.0
	if riskAmount > 0 {
		riskReward = rewardAmount / riskAmount
	}

	return Projection{
		ContractSize:    contractSize,
		RiskAmount:      riskAmount,
		RewardAmount:    rewardAmount,
		RiskAmountInr:   riskAmount * in.ExchangeRate,
		RewardAmountInr: rewardAmount * in.ExchangeRate,
		RiskReward:      riskReward,
	}
}

// Settle 根据用户申报的结果结算盈亏
//
// 本系统信任用户的申报（WIN=止盈成交，LOSS=止损成交），
// 不依据实际出场价反推结果。
func Settle(p Projection, outcome Outcome) Settlement {
	if outcome == OutcomeWin {
		return Settlement{
			Status: string(OutcomeWin),
			Pl:     p.RewardAmount,
			PlUsd:  p.RewardAmount,
			PlInr:  p.RewardAmountInr,
		}
	}
	return Settlement{
		Status: string(OutcomeLoss),
		Pl:     -p.RiskAmount,
		PlUsd:  -p.RiskAmount,
		PlInr:  -p.RiskAmountInr,
	}
}

// SettleByExitPrice 旧版盈亏路径：按实际出场价结算
//
// 早期记录只有出场价没有止损止盈，两种形态会在存储中共存，
// 状态由盈亏符号推导：正为WIN，负为LOSS，零为BE（保本）。
func SettleByExitPrice(direction Direction, entryPrice, exitPrice, quantity float64) Settlement {
	var pl float64
	if direction == DirectionLong {
		pl = (exitPrice - entryPrice) * quantity
	} else {
		pl = (entryPrice - exitPrice) * quantity
	}

	status := "BE"
	if pl > 0 {
		status = string(OutcomeWin)
	} else if pl < 0 {
		status = string(OutcomeLoss)
	}

	return Settlement{
		Status: status,
		Pl:     pl,
		PlUsd:  pl,
	}
}
