package service

import (
	"testing"
	"time"

	"github.com/dushixiang/tradenote/internal/models"
)

func ptr(v float64) *float64 {
	return &v
}

func TestNormalize(t *testing.T) {
	entryDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		trade     models.Trade
		wantPlUsd float64
		wantPlInr float64
	}{
		{
			name: "outcome record has both currencies",
			trade: models.Trade{
				Pl:    ptr(30),
				PlUsd: ptr(30),
				PlInr: ptr(2490),
			},
			wantPlUsd: 30,
			wantPlInr: 2490,
		},
		{
			name: "legacy record falls back to pl",
			trade: models.Trade{
				Pl: ptr(-12.5),
			},
			wantPlUsd: -12.5,
			wantPlInr: -12.5,
		},
		{
			name:      "open trade has no pl at all",
			trade:     models.Trade{},
			wantPlUsd: 0,
			wantPlInr: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.trade.ID = "t1"
			tt.trade.Ticker = "XAUUSD"
			tt.trade.Status = models.StatusWin
			tt.trade.EntryDate = entryDate

			got := Normalize(tt.trade)
			if got.PlUsd != tt.wantPlUsd {
				t.Errorf("PlUsd = %v, want %v", got.PlUsd, tt.wantPlUsd)
			}
			if got.PlInr != tt.wantPlInr {
				t.Errorf("PlInr = %v, want %v", got.PlInr, tt.wantPlInr)
			}
			if got.ID != "t1" || got.Ticker != "XAUUSD" || !got.EntryDate.Equal(entryDate) {
				t.Errorf("identity fields not carried over: %+v", got)
			}
		})
	}
}
