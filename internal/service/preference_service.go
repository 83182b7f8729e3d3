package service

import (
	"context"
	"errors"

	"github.com/dushixiang/tradenote/internal/models"
	"github.com/dushixiang/tradenote/internal/repo"
	"github.com/dushixiang/tradenote/internal/xe"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PreferenceService 用户偏好服务
type PreferenceService struct {
	logger         *zap.Logger
	preferenceRepo *repo.PreferenceRepo
}

func NewPreferenceService(db *gorm.DB, logger *zap.Logger) *PreferenceService {
	return &PreferenceService{
		logger:         logger,
		preferenceRepo: repo.NewPreferenceRepo(db),
	}
}

// GetPreference 获取用户偏好，不存在时返回默认值（深色主题，美元）
func (s *PreferenceService) GetPreference(ctx context.Context, userID string) (*models.Preference, error) {
	preference, err := s.preferenceRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.Preference{
				UserID:   userID,
				Theme:    models.ThemeDark,
				Currency: models.CurrencyUSD,
			}, nil
		}
		return nil, err
	}
	return &preference, nil
}

// UpdatePreferenceRequest 更新偏好请求，空字段保持原值
type UpdatePreferenceRequest struct {
	Theme    string `json:"theme"`
	Currency string `json:"currency"`
}

// UpdatePreference 更新用户偏好，首次更新时落库
func (s *PreferenceService) UpdatePreference(ctx context.Context, userID string, req UpdatePreferenceRequest) (*models.Preference, error) {
	if req.Theme != "" && req.Theme != models.ThemeDark && req.Theme != models.ThemeLight {
		return nil, xe.ErrInvalidPreference
	}
	if req.Currency != "" && req.Currency != models.CurrencyUSD && req.Currency != models.CurrencyINR {
		return nil, xe.ErrInvalidPreference
	}

	preference, err := s.preferenceRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		preference = models.Preference{
			ID:       ulid.Make().String(),
			UserID:   userID,
			Theme:    models.ThemeDark,
			Currency: models.CurrencyUSD,
		}
	}

	if req.Theme != "" {
		preference.Theme = req.Theme
	}
	if req.Currency != "" {
		preference.Currency = req.Currency
	}

	if err := s.preferenceRepo.Save(ctx, &preference); err != nil {
		return nil, err
	}
	return &preference, nil
}
