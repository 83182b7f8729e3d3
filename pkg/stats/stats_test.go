package stats

import (
	"testing"
	"time"
)

func day(n int) time.Time {
	return time.Date(2026, 1, n, 0, 0, 0, 0, time.UTC)
}

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil)

	if got.TotalTrades != 0 {
		t.Errorf("TotalTrades = %d, want 0", got.TotalTrades)
	}
	if got.WinRate != 0 {
		t.Errorf("WinRate = %v, want 0", got.WinRate)
	}
	if got.ProfitFactor != 0 {
		t.Errorf("ProfitFactor = %v, want 0", got.ProfitFactor)
	}
	if got.AvgWinUsd != 0 || got.AvgLossUsd != 0 {
		t.Errorf("averages should be 0, got %v / %v", got.AvgWinUsd, got.AvgLossUsd)
	}
	if len(got.ChartData) != 0 || len(got.RecentTrades) != 0 {
		t.Error("chart and recent trades should be empty")
	}
}

func TestAggregateCounts(t *testing.T) {
	records := []Record{
		{Status: StatusWin, PlUsd: 30, PlInr: 2490, EntryDate: day(1)},
		{Status: StatusLoss, PlUsd: -10, PlInr: -830, EntryDate: day(2)},
		{Status: StatusBreakEven, PlUsd: 0, PlInr: 0, EntryDate: day(3)},
		{Status: StatusWin, PlUsd: 20, PlInr: 1660, EntryDate: day(4)},
	}

	got := Aggregate(records)

	if got.TotalTrades != 4 {
		t.Fatalf("TotalTrades = %d, want 4", got.TotalTrades)
	}
	if got.Wins+got.Losses+got.BreakEven != got.TotalTrades {
		t.Fatal("wins+losses+breakEven should equal total")
	}
	if got.Wins != 2 || got.Losses != 1 || got.BreakEven != 1 {
		t.Fatalf("counts = %d/%d/%d", got.Wins, got.Losses, got.BreakEven)
	}
	if got.WinRate != 50 {
		t.Errorf("WinRate = %v, want 50", got.WinRate)
	}
	if got.TotalPlUsd != 40 {
		t.Errorf("TotalPlUsd = %v, want 40", got.TotalPlUsd)
	}
	if got.TotalPlInr != 3320 {
		t.Errorf("TotalPlInr = %v, want 3320", got.TotalPlInr)
	}
	if got.AvgWinUsd != 25 {
		t.Errorf("AvgWinUsd = %v, want 25", got.AvgWinUsd)
	}
	if got.AvgLossUsd != 10 {
		t.Errorf("AvgLossUsd = %v, want 10 (positive)", got.AvgLossUsd)
	}
	if got.ProfitFactor != 5 {
		t.Errorf("ProfitFactor = %v, want 5", got.ProfitFactor)
	}
}

func TestAggregateProfitFactorSentinel(t *testing.T) {
	// 有盈利无亏损时固定为100，不得返回Inf
	got := Aggregate([]Record{
		{Status: StatusWin, PlUsd: 30, PlInr: 2490, EntryDate: day(1)},
	})
	if got.ProfitFactor != 100 {
		t.Fatalf("ProfitFactor = %v, want sentinel 100", got.ProfitFactor)
	}

	// 只有保本交易时为0
	got = Aggregate([]Record{
		{Status: StatusBreakEven, EntryDate: day(1)},
	})
	if got.ProfitFactor != 0 {
		t.Fatalf("ProfitFactor = %v, want 0", got.ProfitFactor)
	}
}

func TestAggregateBestRun(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		want     int
	}{
		{"trailing streak", []string{StatusWin, StatusWin, StatusLoss, StatusWin, StatusWin, StatusWin}, 3},
		{"break even resets", []string{StatusWin, StatusBreakEven, StatusWin, StatusWin}, 2},
		{"open resets", []string{StatusWin, StatusOpen, StatusWin}, 1},
		{"all losses", []string{StatusLoss, StatusLoss}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([]Record, len(tt.statuses))
			for i, s := range tt.statuses {
				records[i] = Record{Status: s, EntryDate: day(i + 1)}
			}
			got := Aggregate(records)
			if got.BestRun != tt.want {
				t.Errorf("BestRun = %d, want %d", got.BestRun, tt.want)
			}
		})
	}
}

func TestAggregateSortsBeforeStreak(t *testing.T) {
	// 乱序输入：按时间排好后是 WIN WIN LOSS，连胜应为2而不是1
	records := []Record{
		{Status: StatusLoss, EntryDate: day(3)},
		{Status: StatusWin, EntryDate: day(1)},
		{Status: StatusWin, EntryDate: day(2)},
	}
	got := Aggregate(records)
	if got.BestRun != 2 {
		t.Fatalf("BestRun = %d, want 2", got.BestRun)
	}
}

func TestAggregateChartData(t *testing.T) {
	records := []Record{
		{Status: StatusWin, PlInr: 2490, EntryDate: day(2)},
		{Status: StatusLoss, PlInr: -830, EntryDate: day(1)},
	}
	got := Aggregate(records)

	if len(got.ChartData) != 2 {
		t.Fatalf("len(ChartData) = %d, want 2", len(got.ChartData))
	}
	// 时间升序
	if got.ChartData[0].Value != -830 || got.ChartData[1].Value != 2490 {
		t.Errorf("chart values = %v, %v", got.ChartData[0].Value, got.ChartData[1].Value)
	}
	if got.ChartData[0].Label != "Jan 1" {
		t.Errorf("Label = %q, want %q", got.ChartData[0].Label, "Jan 1")
	}
}

func TestAggregateRecentTrades(t *testing.T) {
	records := []Record{
		{ID: "a", Status: StatusWin, EntryDate: day(1)},
		{ID: "b", Status: StatusLoss, EntryDate: day(2)},
		{ID: "c", Status: StatusWin, EntryDate: day(3)},
	}
	got := Aggregate(records)

	if len(got.RecentTrades) != 2 {
		t.Fatalf("len(RecentTrades) = %d, want 2", len(got.RecentTrades))
	}
	// 新的在前
	if got.RecentTrades[0].ID != "c" || got.RecentTrades[1].ID != "b" {
		t.Errorf("recent order = %s, %s; want c, b", got.RecentTrades[0].ID, got.RecentTrades[1].ID)
	}
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	records := []Record{
		{ID: "b", Status: StatusWin, EntryDate: day(2)},
		{ID: "a", Status: StatusWin, EntryDate: day(1)},
	}
	Aggregate(records)
	if records[0].ID != "b" {
		t.Fatal("input slice should not be reordered")
	}
}
