package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-ReservationService/internal/service/settings/models"
)

// Service сервис управления настройками ресторана
type Service struct {
	repo      SettingsRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(repo SettingsRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// Get возвращает текущую конфигурацию ресторана
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("Get: settings not found")
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(settings), nil
}

// Update полностью заменяет конфигурацию ресторана
// Существующие бронирования не пересчитываются: изменение столов или часов
// влияет только на будущие проверки доступности
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: replacing restaurant settings")

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	// 2. Заменяем настройки в одной транзакции: читатели не должны
	// увидеть конфигурацию с половиной столов
	var updated *domain.Settings
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		replaced, err := s.repo.Replace(txCtx, req.ToDomainSettings())
		if err != nil {
			return err
		}
		updated = replaced
		return nil
	})
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: settings replaced, %d tables, %d schedule days", len(updated.Tables), len(updated.Hours))
	return models.FromDomainSettings(updated), nil
}
