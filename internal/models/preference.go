package models

import "time"

// 显示币种
const (
	CurrencyUSD = "USD"
	CurrencyINR = "INR"
)

// 主题
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Preference 用户偏好设置（主题与显示币种）
//
// 核心计算始终同时产出USD和INR两套金额，这里只决定前端展示哪一套。
type Preference struct {
	ID        string    `gorm:"primaryKey;size:26" json:"id"`
	UserID    string    `gorm:"uniqueIndex;size:26;not null" json:"user_id"`
	Theme     string    `gorm:"size:10;not null;default:'dark'" json:"theme"`
	Currency  string    `gorm:"size:3;not null;default:'USD'" json:"currency"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (Preference) TableName() string {
	return "preferences"
}
