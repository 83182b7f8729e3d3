package config

type Config struct {
	Auth     AuthConf     `json:"auth"`
	Forex    ForexConf    `json:"forex"`
	Upload   UploadConf   `json:"upload"`
	Telegram TelegramConf `json:"telegram"`
}

type AuthConf struct {
	JWTSecret string `json:"jwt_secret"` // 为空时启动生成随机值，重启后旧token失效
}

type ForexConf struct {
	BaseURL      string  `json:"base_url"`      // 汇率接口地址，默认 exchangerate-api.com
	FallbackRate float64 `json:"fallback_rate"` // 接口不可用时的兜底汇率，默认83.0
	RefreshCron  string  `json:"refresh_cron"`  // 刷新周期，默认每小时
}

type UploadConf struct {
	Dir         string `json:"dir"`           // 截图存储目录，默认 data/uploads
	MaxSizeMB   int    `json:"max_size_mb"`   // 单张截图大小上限，默认10
	MaxPerTrade int    `json:"max_per_trade"` // 每笔交易截图数量上限，默认5
}

type TelegramConf struct {
	Enabled bool   `json:"enabled"`
	Token   string `json:"token"`
	ChatID  string `json:"chat_id"`
}
