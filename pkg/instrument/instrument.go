package instrument

import "strings"

// Config 交易品种合约配置
type Config struct {
	Symbol       string  `json:"symbol"`
	ContractSize float64 `json:"contract_size"`
	Description  string  `json:"description"`
}

// Configs 常见交易品种的合约大小表，按精确符号匹配，优先级高于启发式规则
var Configs = []Config{
	// 贵金属
	{Symbol: "XAUUSD", ContractSize: 100, Description: "Gold vs US Dollar (100 oz per lot)"},
	{Symbol: "XAGUSD", ContractSize: 5000, Description: "Silver vs US Dollar (5000 oz per lot)"},

	// 主要外汇货币对
	{Symbol: "EURUSD", ContractSize: 100000, Description: "Euro vs US Dollar"},
	{Symbol: "GBPUSD", ContractSize: 100000, Description: "British Pound vs US Dollar"},
	{Symbol: "USDJPY", ContractSize: 100000, Description: "US Dollar vs Japanese Yen"},
	{Symbol: "USDCHF", ContractSize: 100000, Description: "US Dollar vs Swiss Franc"},
	{Symbol: "AUDUSD", ContractSize: 100000, Description: "Australian Dollar vs US Dollar"},
	{Symbol: "NZDUSD", ContractSize: 100000, Description: "New Zealand Dollar vs US Dollar"},
	{Symbol: "USDCAD", ContractSize: 100000, Description: "US Dollar vs Canadian Dollar"},

	// 指数
	{Symbol: "US30", ContractSize: 1, Description: "Dow Jones Industrial Average"},
	{Symbol: "NAS100", ContractSize: 1, Description: "NASDAQ 100"},
	{Symbol: "SPX500", ContractSize: 1, Description: "S&P 500"},

	// 加密货币
	{Symbol: "BTCUSD", ContractSize: 1, Description: "Bitcoin vs US Dollar"},
	{Symbol: "ETHUSD", ContractSize: 1, Description: "Ethereum vs US Dollar"},
}

// Lookup 在配置表中按精确符号查找合约配置
func Lookup(symbol string) (Config, bool) {
	s := strings.ToUpper(symbol)
	for _, c := range Configs {
		if c.Symbol == s {
			return c, true
		}
	}
	return Config{}, false
}

// Resolve 解析交易品种的合约大小
//
// 价格变动 × 合约大小 × 手数 = 美元盈亏。
// 先查配置表，查不到再按符号特征推断，永远返回一个有效值。
func Resolve(symbol string) float64 {
	if c, ok := Lookup(symbol); ok {
		return c.ContractSize
	}
	return heuristic(symbol)
}

// heuristic 按符号子串推断合约大小，规则顺序不可调换（类别之间有重叠）
func heuristic(symbol string) float64 {
	p := strings.ToUpper(symbol)

	// 黄金：1手 = 100盎司，$1波动 = $100盈亏
	if strings.Contains(p, "XAU") {
		return 100
	}

	// 标准外汇货币对：1手 = 100,000基础货币单位
	if len(p) == 6 && !strings.HasPrefix(p, "US") {
		return 100000
	}

	// 指数（US30、NAS100、SPX500等）：1手 = 1合约
	if strings.HasPrefix(p, "US") || strings.Contains(p, "NAS") || strings.Contains(p, "SPX") {
		return 1
	}

	// 加密货币：1手 = 1枚
	if strings.Contains(p, "BTC") || strings.Contains(p, "ETH") {
		return 1
	}

	// 日元货币对（长度不为6时走到这里）
	if strings.Contains(p, "JPY") {
		return 100000
	}

	return 1
}
