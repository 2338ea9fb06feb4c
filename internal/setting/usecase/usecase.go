package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/internal/setting"
	"github.com/fekuna/omnipos-commerce/internal/setting/dto"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"go.uber.org/zap"
)

const (
	configCacheKey = "config:app"
	configCacheTTL = time.Minute
)

// Cache is the slice of pkg/cache the config reads go through.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeletePattern(ctx context.Context, pattern string) error
}

type settingUseCase struct {
	repo   setting.Repository
	cache  Cache
	logger logger.ZapLogger
	now    func() time.Time
}

// NewSettingUseCase wires the config use case. cache may be nil.
func NewSettingUseCase(repo setting.Repository, cache Cache, log logger.ZapLogger) setting.UseCase {
	return &settingUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
		now:    time.Now,
	}
}

func (uc *settingUseCase) GetConfig(ctx context.Context) (*model.AppConfig, error) {
	if uc.cache != nil {
		val, ok, err := uc.cache.Get(ctx, configCacheKey)
		if err != nil {
			uc.logger.Warn("config cache read failed", zap.Error(err))
		} else if ok {
			var cfg model.AppConfig
			if err := json.Unmarshal(val, &cfg); err == nil {
				return &cfg, nil
			}
		}
	}

	cfg, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		// Row missing: every flag off.
		cfg = &model.AppConfig{ID: 1}
	}

	uc.store(ctx, cfg)
	return cfg, nil
}

func (uc *settingUseCase) UpdateConfig(ctx context.Context, input *dto.UpdateConfigInput) (*model.AppConfig, error) {
	cfg, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &model.AppConfig{ID: 1}
	}

	if input.PaletteEnabled != nil {
		cfg.PaletteEnabled = *input.PaletteEnabled
	}
	if input.MaintenanceMode != nil {
		cfg.MaintenanceMode = *input.MaintenanceMode
	}
	cfg.UpdatedAt = uc.now()

	if err := uc.repo.Update(ctx, cfg); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.DeletePattern(ctx, configCacheKey); err != nil {
			uc.logger.Warn("config cache invalidation failed", zap.Error(err))
		}
	}

	uc.logger.Info("App config updated",
		zap.Bool("palette_enabled", cfg.PaletteEnabled),
		zap.Bool("maintenance_mode", cfg.MaintenanceMode),
	)
	return cfg, nil
}

func (uc *settingUseCase) store(ctx context.Context, cfg *model.AppConfig) {
	if uc.cache == nil {
		return
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, configCacheKey, data, configCacheTTL); err != nil {
		uc.logger.Warn("config cache write failed", zap.Error(err))
	}
}
