package forex

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/USD" {
			t.Errorf("path = %q, want /USD", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"USD","date":"2026-09-01","rates":{"INR":83.25,"EUR":0.92}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	rate, err := client.GetRate(context.Background(), "USD", "INR")
	if err != nil {
		t.Fatalf("GetRate: %v", err)
	}
	if rate != 83.25 {
		t.Fatalf("rate = %v, want 83.25", rate)
	}
}

func TestGetRateMissingQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"EUR":0.92}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if _, err := client.GetRate(context.Background(), "USD", "INR"); err == nil {
		t.Fatal("expected error for missing quote currency")
	}
}

func TestGetRateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if _, err := client.GetRate(context.Background(), "USD", "INR"); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}
