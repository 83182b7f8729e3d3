package internal

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dushixiang/tradenote/internal/config"
	"github.com/dushixiang/tradenote/internal/handler"
	appmiddleware "github.com/dushixiang/tradenote/internal/middleware"
	"github.com/dushixiang/tradenote/internal/models"
	"github.com/dushixiang/tradenote/internal/service"
	"github.com/dushixiang/tradenote/internal/telegram"
	"github.com/dushixiang/tradenote/pkg/nostd"
	"github.com/dushixiang/tradenote/web"
	"github.com/go-orz/orz"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func Run(configPath string) error {
	app := NewTradenoteApp()

	framework, err := orz.NewFramework(
		orz.WithConfig(configPath),
		orz.WithLoggerFromConfig(),
		orz.WithDatabase(),
		orz.WithHTTP(),
		orz.WithApplication(app),
	)
	if err != nil {
		return err
	}

	return framework.Run()
}

func NewTradenoteApp() orz.Application {
	return &TradenoteApp{}
}

var _ orz.Application = (*TradenoteApp)(nil)

type AppComponents struct {
	AuthHandler       *handler.AuthHandler
	SetupHandler      *handler.SetupHandler
	TradeHandler      *handler.TradeHandler
	DashboardHandler  *handler.DashboardHandler
	UploadHandler     *handler.UploadHandler
	PreferenceHandler *handler.PreferenceHandler

	AuthService *service.AuthService
	RateService *service.RateService

	Telegram *telegram.Telegram
}

type TradenoteApp struct {
	components *AppComponents
	conf       *config.Config
}

// GetComponents 获取应用组件
func (r *TradenoteApp) GetComponents() *AppComponents {
	return r.components
}

func (r *TradenoteApp) Configure(app *orz.App) error {
	logger := app.Logger()
	e := app.GetEcho()
	db := app.GetDatabase()

	var conf config.Config
	err := app.GetConfig().App.Unmarshal(&conf)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %v", err)
	}

	components, err := InitializeApp(logger, db, &conf)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %v", err)
	}
	r.components = components
	r.conf = &conf

	if err := db.AutoMigrate(
		models.User{}, models.Preference{}, models.Trade{}, models.Attachment{},
	); err != nil {
		logger.Fatal("database auto migrate failed", zap.Error(err))
	}

	if err := r.Init(logger); err != nil {
		logger.Fatal("app init failed", zap.Error(err))
	}

	e.HidePort = true
	e.HideBanner = true

	e.Use(middleware.Gzip())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		Skipper:      middleware.DefaultSkipper,
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
	}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			sugar := logger.Sugar()
			sugar.Error(fmt.Sprintf("[PANIC RECOVER] %v %s\n", err, stack))
			return err
		},
	}))
	e.Use(WithErrorHandler(logger))
	customValidator := nostd.CustomValidator{Validator: validator.New()}
	if err := customValidator.TransInit(); err != nil {
		logger.Sugar().Fatal("failed to init custom validator", zap.Error(err))
	}
	e.Validator = &customValidator

	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Skipper: func(c echo.Context) bool {
			path := c.Request().RequestURI
			if strings.HasPrefix(path, "/api") {
				return true
			}
			return false
		},
		Root:       "",
		Index:      "index.html",
		HTML5:      true,
		Browse:     false,
		IgnoreBase: false,
		Filesystem: http.FS(web.Assets()),
	}))

	api := e.Group("/api")
	{
		// 公开接口
		components.AuthHandler.RegisterRoutes(api)
		components.SetupHandler.RegisterRoutes(api)

		// 需要认证的接口
		protected := api.Group("")
		protected.Use(appmiddleware.JWTAuth(appmiddleware.JWTAuthConfig{
			AuthService: components.AuthService,
			Logger:      logger,
		}))

		components.AuthHandler.RegisterProtectedRoutes(protected.Group("/auth"))
		components.TradeHandler.RegisterRoutes(protected)
		components.DashboardHandler.RegisterRoutes(protected)
		components.UploadHandler.RegisterRoutes(protected)
		components.PreferenceHandler.RegisterRoutes(protected)
	}

	return nil
}

func (r *TradenoteApp) Init(logger *zap.Logger) error {
	logger.Info("=================================================")
	logger.Info("Tradenote Trading Journal Starting...")
	logger.Info("=================================================")

	components := r.GetComponents()
	if components == nil {
		return fmt.Errorf("components not initialized")
	}

	if err := components.RateService.Start(context.Background()); err != nil {
		return fmt.Errorf("failed to start rate service: %v", err)
	}

	if components.Telegram != nil {
		components.Telegram.Start()
		logger.Info("telegram notifier started")
	}

	return nil
}

// statsSummary 构建telegram /stats 命令的文本摘要
func statsSummary(dashboardService *service.DashboardService) telegram.StatsProvider {
	return func(ctx context.Context) (string, error) {
		result, err := dashboardService.GetStats(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(
			"📊 交易统计\n总交易: %d\n胜率: %.1f%%\n总盈亏: $%.2f / ₹%.2f\n盈亏比: %.2f\n最长连胜: %d",
			result.TotalTrades,
			result.WinRate,
			result.TotalPlUsd,
			result.TotalPlInr,
			result.ProfitFactor,
			result.BestRun,
		), nil
	}
}
