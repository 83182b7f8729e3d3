package service

import (
	"context"
	"sync"
	"time"

	"github.com/dushixiang/tradenote/internal/config"
	"github.com/dushixiang/tradenote/pkg/forex"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultFallbackRate 汇率接口不可用时的兜底USD→INR汇率
const DefaultFallbackRate = 83.0

// RateService 汇率服务
//
// 后台定时拉取USD→INR汇率并缓存。接口失败时沿用上一次成功的值，
// 从未成功过则使用兜底常量。核心计算层只拿到一个数字，
// 不区分实时值和兜底值。
type RateService struct {
	logger *zap.Logger
	client *forex.Client
	conf   config.ForexConf

	mu        sync.RWMutex
	rate      float64
	fetchedAt time.Time

	cron *cron.Cron
}

// NewRateService 创建汇率服务
func NewRateService(logger *zap.Logger, conf *config.Config) *RateService {
	fc := conf.Forex
	if fc.FallbackRate <= 0 {
		fc.FallbackRate = DefaultFallbackRate
	}
	if fc.RefreshCron == "" {
		fc.RefreshCron = "0 * * * *" // 每小时整点刷新
	}
	return &RateService{
		logger: logger,
		client: forex.NewClient(fc.BaseURL),
		conf:   fc,
		rate:   fc.FallbackRate,
	}
}

// CurrentRate 获取当前缓存的USD→INR汇率
func (s *RateService) CurrentRate() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rate
}

// RateInfo 汇率信息
type RateInfo struct {
	Rate      float64   `json:"rate"`
	FetchedAt time.Time `json:"fetched_at"` // 零值表示从未成功拉取，返回的是兜底值
}

// Info 获取当前汇率及其拉取时间
func (s *RateService) Info() RateInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return RateInfo{Rate: s.rate, FetchedAt: s.fetchedAt}
}

// Refresh 立即拉取一次汇率
func (s *RateService) Refresh(ctx context.Context) error {
	rate, err := s.client.GetRate(ctx, "USD", "INR")
	if err != nil {
		s.logger.Warn("failed to refresh exchange rate, keeping cached value",
			zap.Float64("cached_rate", s.CurrentRate()),
			zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.rate = rate
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	s.logger.Info("exchange rate refreshed", zap.Float64("usd_inr", rate))
	return nil
}

// Start 启动定时刷新，启动时先同步拉一次
func (s *RateService) Start(ctx context.Context) error {
	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn("initial exchange rate fetch failed, using fallback",
			zap.Float64("fallback", s.conf.FallbackRate))
	}

	s.cron = cron.New()
	_, err := s.cron.AddFunc(s.conf.RefreshCron, func() {
		refreshCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = s.Refresh(refreshCtx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("exchange rate refresh scheduled", zap.String("cron", s.conf.RefreshCron))
	return nil
}

// Stop 停止定时刷新
func (s *RateService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
