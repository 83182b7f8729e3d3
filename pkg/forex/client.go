package forex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultBaseURL exchangerate-api.com 免费接口，每月1500次足够个人使用
const DefaultBaseURL = "https://api.exchangerate-api.com/v4/latest"

// Client 汇率接口客户端
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient 创建汇率客户端，baseURL为空时使用默认接口
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type latestResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// GetRate 获取base到quote的最新汇率
func (c *Client) GetRate(ctx context.Context, base, quote string) (float64, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch exchange rate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("exchange rate api returned status %d", resp.StatusCode)
	}

	var data latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return 0, fmt.Errorf("failed to decode exchange rate response: %w", err)
	}

	rate, ok := data.Rates[quote]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("exchange rate for %s/%s not available", base, quote)
	}

	return rate, nil
}
