package tradecalc

import (
	"math"
	"testing"
)

func TestProject(t *testing.T) {
	// US30做多：入场100，止损90，止盈130，1手，合约大小1
	p := Project(Input{
		Ticker:       "US30",
		Direction:    DirectionLong,
		EntryPrice:   100,
		StopLoss:     90,
		TakeProfit:   130,
		LotSize:      1,
		ExchangeRate: 83,
	})

	if p.ContractSize != 1 {
		t.Fatalf("ContractSize = %v, want 1", p.ContractSize)
	}
	if p.RiskAmount != 10 {
		t.Errorf("RiskAmount = %v, want 10", p.RiskAmount)
	}
	if p.RewardAmount != 30 {
		t.Errorf("RewardAmount = %v, want 30", p.RewardAmount)
	}
	if p.RiskAmountInr != 830 {
		t.Errorf("RiskAmountInr = %v, want 830", p.RiskAmountInr)
	}
	if p.RewardAmountInr != 2490 {
		t.Errorf("RewardAmountInr = %v, want 2490", p.RewardAmountInr)
	}
	if p.RiskReward != 3 {
		t.Errorf("RiskReward = %v, want 3", p.RiskReward)
	}
}

func TestProjectDistancesAreAbsolute(t *testing.T) {
	// 做空时止损在入场价上方、止盈在下方，幅度仍为正
	p := Project(Input{
		Ticker:       "US30",
		Direction:    DirectionShort,
		EntryPrice:   100,
		StopLoss:     110,
		TakeProfit:   70,
		LotSize:      2,
		ExchangeRate: 83,
	})

	if p.RiskAmount != 20 {
		t.Errorf("RiskAmount = %v, want 20", p.RiskAmount)
	}
	if p.RewardAmount != 60 {
		t.Errorf("RewardAmount = %v, want 60", p.RewardAmount)
	}
}

func TestProjectZeroRisk(t *testing.T) {
	// 止损等于入场价时风险为0，盈亏比不得为Inf或NaN
	p := Project(Input{
		Ticker:       "US30",
		Direction:    DirectionLong,
		EntryPrice:   100,
		StopLoss:     100,
		TakeProfit:   130,
		LotSize:      1,
		ExchangeRate: 83,
	})

	if p.RiskReward != 0 {
		t.Fatalf("RiskReward = %v, want 0", p.RiskReward)
	}
}

func TestProjectContractMultiplier(t *testing.T) {
	// 黄金：$5波动 × 100盎司 × 0.1手 = $50
	p := Project(Input{
		Ticker:       "XAUUSD",
		Direction:    DirectionLong,
		EntryPrice:   2000,
		StopLoss:     1995,
		TakeProfit:   2010,
		LotSize:      0.1,
		ExchangeRate: 83,
	})

	if math.Abs(p.RiskAmount-50) > 1e-9 {
		t.Errorf("RiskAmount = %v, want 50", p.RiskAmount)
	}
	if math.Abs(p.RewardAmount-100) > 1e-9 {
		t.Errorf("RewardAmount = %v, want 100", p.RewardAmount)
	}
}

func TestSettle(t *testing.T) {
	p := Projection{
		RiskAmount:      10,
		RewardAmount:    30,
		RiskAmountInr:   830,
		RewardAmountInr: 2490,
		RiskReward:      3,
	}

	win := Settle(p, OutcomeWin)
	if win.Status != "WIN" || win.Pl != 30 || win.PlUsd != 30 || win.PlInr != 2490 {
		t.Fatalf("win settlement = %+v", win)
	}

	loss := Settle(p, OutcomeLoss)
	if loss.Status != "LOSS" || loss.Pl != -10 || loss.PlUsd != -10 || loss.PlInr != -830 {
		t.Fatalf("loss settlement = %+v", loss)
	}
}

func TestSettleByExitPrice(t *testing.T) {
	tests := []struct {
		name       string
		direction  Direction
		entry      float64
		exit       float64
		quantity   float64
		wantStatus string
		wantPl     float64
	}{
		{"long win", DirectionLong, 100, 110, 2, "WIN", 20},
		{"long loss", DirectionLong, 100, 95, 2, "LOSS", -10},
		{"short win", DirectionShort, 100, 90, 1, "WIN", 10},
		{"short loss", DirectionShort, 100, 105, 1, "LOSS", -5},
		{"break even", DirectionLong, 100, 100, 3, "BE", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SettleByExitPrice(tt.direction, tt.entry, tt.exit, tt.quantity)
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", got.Status, tt.wantStatus)
			}
			if got.Pl != tt.wantPl {
				t.Errorf("Pl = %v, want %v", got.Pl, tt.wantPl)
			}
			if got.PlUsd != tt.wantPl {
				t.Errorf("PlUsd = %v, want %v", got.PlUsd, tt.wantPl)
			}
			// 旧版路径没有汇率快照，不产出INR口径
			if got.PlInr != 0 {
				t.Errorf("PlInr = %v, want 0", got.PlInr)
			}
		})
	}
}
