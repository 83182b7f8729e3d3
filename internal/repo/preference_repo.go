package repo

import (
	"context"

	"github.com/dushixiang/tradenote/internal/models"
	"github.com/go-orz/orz"
	"gorm.io/gorm"
)

func NewPreferenceRepo(db *gorm.DB) *PreferenceRepo {
	return &PreferenceRepo{
		Repository: orz.NewRepository[models.Preference, string](db),
	}
}

type PreferenceRepo struct {
	orz.Repository[models.Preference, string]
}

// FindByUserID 查找用户的偏好设置
func (r PreferenceRepo) FindByUserID(ctx context.Context, userID string) (m models.Preference, err error) {
	db := r.GetDB(ctx)
	err = db.Table(r.GetTableName()).
		Where("user_id = ?", userID).
		First(&m).Error
	return m, err
}
