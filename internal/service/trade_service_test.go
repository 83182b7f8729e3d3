package service

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1.5", 1.5},
		{" 2000 ", 2000},
		{"-10.25", -10.25},
		{"", 0},
		{"abc", 0},
		{"1,000", 0}, // 不支持千分位
	}
	for _, tt := range tests {
		got := parseAmount(tt.in)
		if got != tt.want {
			t.Errorf("parseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
