package telegram

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dushixiang/tradenote/internal/models"
	"github.com/spf13/cast"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/middleware"
)

type Settings struct {
	Token  string
	ChatID string
	Client *http.Client
}

// StatsProvider 提供 /stats 命令用的统计摘要
type StatsProvider func(ctx context.Context) (string, error)

// Telegram 交易记录通知机器人
type Telegram struct {
	logger   *zap.Logger
	settings Settings
	client   *tele.Bot

	statsProvider StatsProvider
}

type Option func(telegram *Telegram)

// WithStatsProvider 注入 /stats 命令的数据源
func WithStatsProvider(provider StatsProvider) Option {
	return func(telegram *Telegram) {
		telegram.statsProvider = provider
	}
}

func NewTelegram(logger *zap.Logger, settings Settings, options ...Option) (*Telegram, error) {

	poller := &tele.LongPoller{Timeout: 10 * time.Second}

	client, err := tele.NewBot(tele.Settings{
		ParseMode: tele.ModeMarkdown,
		Token:     settings.Token,
		Poller:    poller,
		Client:    settings.Client,
	})
	if err != nil {
		return nil, err
	}

	client.Use(middleware.AutoRespond())

	err = client.SetCommands([]tele.Command{
		{Text: "/start", Description: "启动机器人"},
		{Text: "/stats", Description: "查看交易统计摘要"},
	})
	if err != nil {
		return nil, err
	}

	bot := &Telegram{
		logger:   logger,
		settings: settings,
		client:   client,
	}

	for _, option := range options {
		option(bot)
	}

	client.Handle("/start", func(c tele.Context) error {
		return c.Send("交易日志机器人已就绪，记录交易后会在这里收到通知。")
	})

	client.Handle("/stats", func(c tele.Context) error {
		if bot.statsProvider == nil {
			return c.Send("统计功能未启用")
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		summary, err := bot.statsProvider(ctx)
		if err != nil {
			bot.logger.Error("failed to build stats summary", zap.Error(err))
			return c.Send("统计数据获取失败")
		}
		return c.Send(summary)
	})

	return bot, nil
}

func (r *Telegram) Start() {
	go r.client.Start()
}

func (r *Telegram) Stop() {
	r.client.Stop()
}

// NotifyTrade 推送交易录入/平仓通知
func (r *Telegram) NotifyTrade(trade *models.Trade) {
	var sb strings.Builder
	switch trade.Status {
	case models.StatusOpen:
		sb.WriteString("📥 *新交易*\n")
	case models.StatusWin:
		sb.WriteString("✅ *盈利平仓*\n")
	case models.StatusLoss:
		sb.WriteString("❌ *亏损平仓*\n")
	default:
		sb.WriteString("➖ *保本平仓*\n")
	}
	sb.WriteString(fmt.Sprintf("品种: %s %s\n", trade.Ticker, trade.Direction))
	sb.WriteString(fmt.Sprintf("入场: %v  手数: %v\n", trade.EntryPrice, trade.Quantity))
	if trade.RiskReward != nil {
		sb.WriteString(fmt.Sprintf("风险回报比: %.2f\n", *trade.RiskReward))
	}
	if trade.PlUsd != nil {
		sb.WriteString(fmt.Sprintf("盈亏: $%.2f / ₹%.2f\n", *trade.PlUsd, derefOrZero(trade.PlInr)))
	} else if trade.Pl != nil {
		sb.WriteString(fmt.Sprintf("盈亏: %.2f\n", *trade.Pl))
	}
	if trade.Notes != "" {
		sb.WriteString(escapeMarkdownV2(trade.Notes))
	}

	if err := r.Notify(r.settings.ChatID, sb.String()); err != nil {
		r.logger.Error("failed to send trade notification",
			zap.String("trade_id", trade.ID),
			zap.Error(err))
	}
}

func (r *Telegram) Notify(chatId, msg string) error {
	_chatId := cast.ToInt(chatId)
	_, err := r.client.Send(tele.ChatID(_chatId), msg, &tele.SendOptions{ParseMode: tele.ModeMarkdown})
	return err
}

func derefOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
