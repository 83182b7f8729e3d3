package repo

import (
	"context"

	"github.com/dushixiang/tradenote/internal/models"
	"github.com/go-orz/orz"
	"gorm.io/gorm"
)

func NewAttachmentRepo(db *gorm.DB) *AttachmentRepo {
	return &AttachmentRepo{
		Repository: orz.NewRepository[models.Attachment, string](db),
	}
}

type AttachmentRepo struct {
	orz.Repository[models.Attachment, string]
}

// FindByTradeID 查找某笔交易的全部附件
func (r AttachmentRepo) FindByTradeID(ctx context.Context, tradeID string) ([]models.Attachment, error) {
	var items []models.Attachment
	db := r.GetDB(ctx)
	err := db.Table(r.GetTableName()).
		Where("trade_id = ?", tradeID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

// UpdateTradeID 将一批附件关联到指定交易
func (r AttachmentRepo) UpdateTradeID(ctx context.Context, ids []string, tradeID string) error {
	if len(ids) == 0 {
		return nil
	}
	db := r.GetDB(ctx)
	return db.Table(r.GetTableName()).
		Where("id IN ?", ids).
		Update("trade_id", tradeID).Error
}
