package instrument

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		symbol string
		want   float64
	}{
		{"XAUUSD", 100},
		{"xauusd", 100},
		{"XAGUSD", 5000},
		{"EURUSD", 100000},
		{"GBPJPY", 100000},
		{"USDJPY", 100000},
		{"US30", 1},
		{"NAS100", 1},
		{"SPX500", 1},
		{"BTCUSD", 1},
		{"ETHUSD", 1},
		{"ZZZINVALID", 1},
		{"", 1},
	}
	for _, tt := range tests {
		got := Resolve(tt.symbol)
		if got != tt.want {
			t.Errorf("Resolve(%q) = %v, want %v", tt.symbol, got, tt.want)
		}
	}
}

func TestResolveHeuristicSixLetterPair(t *testing.T) {
	// 未配置的六字母货币对走启发式规则
	got := Resolve("AUDCAD")
	if got != 100000 {
		t.Fatalf("Resolve(AUDCAD) = %v, want 100000", got)
	}
}

func TestResolveHeuristicDoesNotKnowSilver(t *testing.T) {
	// 白银的5000只存在于配置表，启发式会把XAG当普通货币对
	if _, ok := Lookup("XAGUSD"); !ok {
		t.Fatal("XAGUSD should be in the config table")
	}
	got := heuristic("XAGUSD")
	if got == 5000 {
		t.Fatal("heuristic should not know the silver contract size")
	}
}

func TestLookup(t *testing.T) {
	cfg, ok := Lookup("xauusd")
	if !ok {
		t.Fatal("Lookup(xauusd) should match case-insensitively")
	}
	if cfg.ContractSize != 100 {
		t.Fatalf("ContractSize = %v, want 100", cfg.ContractSize)
	}

	if _, ok := Lookup("NOPE"); ok {
		t.Fatal("Lookup(NOPE) should not match")
	}
}
