package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dushixiang/tradenote/internal/config"
	"github.com/dushixiang/tradenote/internal/models"
	"github.com/dushixiang/tradenote/internal/repo"
	"github.com/dushixiang/tradenote/internal/xe"
	"github.com/dushixiang/tradenote/pkg/tradecalc"
	"github.com/go-orz/orz"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/cast"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TradeService 交易日志服务
type TradeService struct {
	logger *zap.Logger

	*orz.Service
	*repo.TradeRepo
	attachmentRepo *repo.AttachmentRepo

	rateService    *RateService
	storageService *StorageService
	notifier       Notifier
	conf           config.UploadConf
}

// Notifier 交易事件通知器，telegram未配置时为nil
type Notifier interface {
	NotifyTrade(trade *models.Trade)
}

// NewTradeService 创建交易日志服务
func NewTradeService(
	db *gorm.DB,
	rateService *RateService,
	storageService *StorageService,
	notifier Notifier,
	logger *zap.Logger,
	conf *config.Config,
) *TradeService {
	return &TradeService{
		logger:         logger,
		Service:        orz.NewService(db),
		TradeRepo:      repo.NewTradeRepo(db),
		attachmentRepo: repo.NewAttachmentRepo(db),
		rateService:    rateService,
		storageService: storageService,
		notifier:       notifier,
		conf:           conf.Upload,
	}
}

// AddTradeRequest 录入交易请求
//
// 数值字段以字符串形式从表单进来，空串或无法解析的内容按0处理。
// 提供exit_price走旧版出场价结算；否则走止损止盈加申报结果的新版路径。
type AddTradeRequest struct {
	Ticker    string `json:"ticker" validate:"required"`
	Market    string `json:"market"`
	Direction string `json:"direction" validate:"required,oneof=LONG SHORT"`

	EntryPrice string `json:"entry_price" validate:"required"`
	Quantity   string `json:"quantity" validate:"required"`

	// 新版：风险回报路径
	StopLoss   string `json:"stop_loss"`
	TakeProfit string `json:"take_profit"`
	Outcome    string `json:"outcome"` // ""（未平仓）/ WIN / LOSS

	// 旧版：出场价路径
	ExitPrice string `json:"exit_price"`

	EntryDate int64 `json:"entry_date"` // 毫秒时间戳，0表示当前时间
	ExitDate  int64 `json:"exit_date"`

	TimeFrame string   `json:"time_frame"`
	Notes     string   `json:"notes"`
	ImageIds  []string `json:"image_ids"`
}

// parseAmount 解析表单数值，空串或非法输入按0处理
func parseAmount(s string) float64 {
	return cast.ToFloat64(strings.TrimSpace(s))
}

// AddTrade 录入一笔交易
//
// 所有派生字段在入库前同步算好，不存在服务端二次计算。
func (s *TradeService) AddTrade(ctx context.Context, req AddTradeRequest) (*models.Trade, error) {
	if req.Direction != models.DirectionLong && req.Direction != models.DirectionShort {
		return nil, xe.ErrInvalidDirection
	}
	if req.Outcome != "" && req.Outcome != models.StatusWin && req.Outcome != models.StatusLoss {
		return nil, xe.ErrInvalidOutcome
	}
	if len(req.ImageIds) > s.maxImagesPerTrade() {
		return nil, xe.ErrTooManyImages
	}

	entryPrice := parseAmount(req.EntryPrice)
	quantity := parseAmount(req.Quantity)

	entryDate := time.Now()
	if req.EntryDate > 0 {
		entryDate = time.UnixMilli(req.EntryDate)
	}

	trade := &models.Trade{
		ID:        ulid.Make().String(),
		Ticker:    req.Ticker,
		Market:    req.Market,
		Direction: req.Direction,
		Status:    models.StatusOpen,

		EntryPrice: entryPrice,
		Quantity:   quantity,
		EntryDate:  entryDate,
		TimeFrame:  req.TimeFrame,
		Notes:      req.Notes,
		ImageIds:   req.ImageIds,
	}
	trade.NormalizeTicker()

	if strings.TrimSpace(req.ExitPrice) != "" {
		s.settleByExitPrice(trade, req)
	} else {
		s.projectAndSettle(trade, req)
	}

	if req.ExitDate > 0 {
		exitDate := time.UnixMilli(req.ExitDate)
		trade.ExitDate = &exitDate
	}

	err := s.Transaction(ctx, func(ctx context.Context) error {
		if err := s.TradeRepo.Create(ctx, trade); err != nil {
			return err
		}
		return s.attachmentRepo.UpdateTradeID(ctx, req.ImageIds, trade.ID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("trade journaled",
		zap.String("id", trade.ID),
		zap.String("ticker", trade.Ticker),
		zap.String("status", trade.Status))

	if s.notifier != nil {
		s.notifier.NotifyTrade(trade)
	}

	return trade, nil
}

// settleByExitPrice 旧版路径：按出场价算盈亏，状态由符号推导
func (s *TradeService) settleByExitPrice(trade *models.Trade, req AddTradeRequest) {
	exitPrice := parseAmount(req.ExitPrice)

	settlement := tradecalc.SettleByExitPrice(
		tradecalc.Direction(trade.Direction), trade.EntryPrice, exitPrice, trade.Quantity)

	trade.ExitPrice = &exitPrice
	trade.Status = settlement.Status
	trade.Pl = &settlement.Pl

	if trade.EntryPrice > 0 && trade.Quantity > 0 {
		plPercent := settlement.Pl / (trade.EntryPrice * trade.Quantity) * 100
		trade.PlPercent = &plPercent
	}
}

// projectAndSettle 新版路径：算风险回报预估，有申报结果时顺带结算
func (s *TradeService) projectAndSettle(trade *models.Trade, req AddTradeRequest) {
	stopLoss := parseAmount(req.StopLoss)
	takeProfit := parseAmount(req.TakeProfit)
	rate := s.rateService.CurrentRate()

	projection := tradecalc.Project(tradecalc.Input{
		Ticker:       trade.Ticker,
		Direction:    tradecalc.Direction(trade.Direction),
		EntryPrice:   trade.EntryPrice,
		StopLoss:     stopLoss,
		TakeProfit:   takeProfit,
		LotSize:      trade.Quantity,
		ExchangeRate: rate,
	})

	trade.StopLoss = &stopLoss
	trade.TakeProfit = &takeProfit
	trade.ExchangeRate = rate
	trade.RiskAmount = &projection.RiskAmount
	trade.RewardAmount = &projection.RewardAmount
	trade.RiskAmountInr = &projection.RiskAmountInr
	trade.RewardAmountInr = &projection.RewardAmountInr
	trade.RiskReward = &projection.RiskReward

	if req.Outcome != "" {
		settlement := tradecalc.Settle(projection, tradecalc.Outcome(req.Outcome))
		trade.Status = settlement.Status
		trade.Pl = &settlement.Pl
		trade.PlUsd = &settlement.PlUsd
		trade.PlInr = &settlement.PlInr
	}
}

// CloseTradeRequest 平仓申报请求
type CloseTradeRequest struct {
	Outcome  string `json:"outcome" validate:"required,oneof=WIN LOSS"`
	ExitDate int64  `json:"exit_date"` // 毫秒时间戳，0表示当前时间
}

// CloseTrade 对未平仓交易申报结果
//
// 结算基于开仓时存下的预估金额和汇率快照，不重新取汇率。
func (s *TradeService) CloseTrade(ctx context.Context, id string, req CloseTradeRequest) (*models.Trade, error) {
	trade, err := s.TradeRepo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xe.ErrTradeNotFound
		}
		return nil, err
	}

	if trade.Status != models.StatusOpen {
		return nil, xe.ErrTradeNotOpen
	}

	projection := tradecalc.Projection{
		RiskAmount:      deref(trade.RiskAmount),
		RewardAmount:    deref(trade.RewardAmount),
		RiskAmountInr:   deref(trade.RiskAmountInr),
		RewardAmountInr: deref(trade.RewardAmountInr),
		RiskReward:      deref(trade.RiskReward),
	}

	settlement := tradecalc.Settle(projection, tradecalc.Outcome(req.Outcome))
	trade.Status = settlement.Status
	trade.Pl = &settlement.Pl
	trade.PlUsd = &settlement.PlUsd
	trade.PlInr = &settlement.PlInr

	exitDate := time.Now()
	if req.ExitDate > 0 {
		exitDate = time.UnixMilli(req.ExitDate)
	}
	trade.ExitDate = &exitDate

	if err := s.TradeRepo.Save(ctx, &trade); err != nil {
		return nil, err
	}

	s.logger.Info("trade closed",
		zap.String("id", trade.ID),
		zap.String("ticker", trade.Ticker),
		zap.String("outcome", trade.Status))

	if s.notifier != nil {
		s.notifier.NotifyTrade(&trade)
	}

	return &trade, nil
}

// GetTrade 获取单笔交易
func (s *TradeService) GetTrade(ctx context.Context, id string) (*models.Trade, error) {
	trade, err := s.TradeRepo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xe.ErrTradeNotFound
		}
		return nil, err
	}
	return &trade, nil
}

// ListTrades 获取交易列表，按开仓时间倒序，可选按月份过滤
//
// month为1-12，需与year同时提供才生效。
func (s *TradeService) ListTrades(ctx context.Context, month, year int) ([]models.Trade, error) {
	if month > 0 && year > 0 {
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
		end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
		trades, err := s.TradeRepo.FindByDateRange(ctx, start, end)
		if err != nil {
			return nil, err
		}
		// 范围查询升序返回，列表展示要新的在前
		reverse(trades)
		return trades, nil
	}
	return s.TradeRepo.FindAllOrderByEntryDate(ctx)
}

// ListTradesInRange 获取开仓时间在[start, end]内的交易，升序
func (s *TradeService) ListTradesInRange(ctx context.Context, start, end time.Time) ([]models.Trade, error) {
	if end.Before(start) {
		return nil, xe.ErrInvalidDateRange
	}
	return s.TradeRepo.FindByDateRange(ctx, start, end)
}

// DeleteTrade 删除交易，连同附件记录和磁盘上的截图一起清理
func (s *TradeService) DeleteTrade(ctx context.Context, id string) error {
	trade, err := s.TradeRepo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return xe.ErrTradeNotFound
		}
		return err
	}

	attachments, err := s.attachmentRepo.FindByTradeID(ctx, trade.ID)
	if err != nil {
		return err
	}

	err = s.Transaction(ctx, func(ctx context.Context) error {
		for _, a := range attachments {
			if err := s.attachmentRepo.DeleteById(ctx, a.ID); err != nil {
				return err
			}
		}
		return s.TradeRepo.DeleteById(ctx, trade.ID)
	})
	if err != nil {
		return err
	}

	// 磁盘清理放在事务外，失败只记日志不回滚
	for _, a := range attachments {
		if err := s.storageService.Delete(a.ID); err != nil {
			s.logger.Warn("failed to remove attachment file",
				zap.String("attachment_id", a.ID),
				zap.Error(err))
		}
	}

	s.logger.Info("trade deleted",
		zap.String("id", trade.ID),
		zap.String("ticker", trade.Ticker),
		zap.Int("attachments_removed", len(attachments)))
	return nil
}

func (s *TradeService) maxImagesPerTrade() int {
	if s.conf.MaxPerTrade > 0 {
		return s.conf.MaxPerTrade
	}
	return 5
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func reverse(trades []models.Trade) {
	for i, j := 0, len(trades)-1; i < j; i, j = i+1, j-1 {
		trades[i], trades[j] = trades[j], trades[i]
	}
}

