package models

import "time"

// Attachment 行情截图附件
//
// 附件归属于单笔交易，删除交易时连同磁盘文件一起清理。
type Attachment struct {
	ID          string    `gorm:"primaryKey;size:26" json:"id"`
	TradeID     string    `gorm:"size:26;index" json:"trade_id"` // 上传时可能尚未关联交易
	FileName    string    `gorm:"size:255;not null" json:"file_name"`
	ContentType string    `gorm:"size:100" json:"content_type"`
	Size        int64     `gorm:"" json:"size"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 指定表名
func (Attachment) TableName() string {
	return "attachments"
}
