package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	overrideRepo "github.com/williamfinanuber/lariagendamentos/internal/infra/storage/override"
	policyRepo "github.com/williamfinanuber/lariagendamentos/internal/infra/storage/policy"
	"github.com/williamfinanuber/lariagendamentos/internal/service/availability/models"
	"github.com/williamfinanuber/lariagendamentos/pkg/types"
)

// Service сервис администрирования расписания: недельная политика и блокировки на даты
type Service struct {
	policyRepo   PolicyRepository
	overrideRepo OverrideRepository
	txManager    TransactionManager
	defaults     domain.WeeklyPolicy
	logger       Logger
}

// NewService создает новый экземпляр сервиса
// defaults используется, пока в базе ничего не сохранено
func NewService(
	policyRepo PolicyRepository,
	overrideRepo OverrideRepository,
	txManager TransactionManager,
	defaults domain.WeeklyPolicy,
	logger Logger,
) *Service {
	return &Service{
		policyRepo:   policyRepo,
		overrideRepo: overrideRepo,
		txManager:    txManager,
		defaults:     defaults,
		logger:       logger,
	}
}

// LoadPolicy собирает недельную политику: флаги из базы поверх значений по умолчанию,
// базовые слоты по дням недели поверх слотов по умолчанию
func (s *Service) LoadPolicy(ctx context.Context) (*domain.WeeklyPolicy, error) {
	policy := s.defaults

	stored, err := s.policyRepo.Get(ctx)
	switch {
	case errors.Is(err, policyRepo.ErrPolicyNotFound):
		s.logger.Info("LoadPolicy: no stored policy, using defaults")
	case err != nil:
		s.logger.Error("LoadPolicy: failed to get policy: %v", err)
		return nil, fmt.Errorf("%w: LoadPolicy - repository error: %w", ErrInternal, err)
	default:
		policy.SaturdayOpen = stored.SaturdayOpen
		policy.SundayOpen = stored.SundayOpen
		policy.UpdatedAt = stored.UpdatedAt
	}

	slots, err := s.policyRepo.GetAllSlots(ctx)
	if err != nil {
		s.logger.Error("LoadPolicy: failed to get weekday slots: %v", err)
		return nil, fmt.Errorf("%w: LoadPolicy - repository error: %w", ErrInternal, err)
	}

	base := make(map[time.Weekday][]types.TimeString, len(domain.Weekdays))
	for wd, defaultSlots := range s.defaults.BaseSlots {
		base[wd] = defaultSlots
	}
	for wd, storedSlots := range slots {
		base[wd] = storedSlots
	}
	policy.BaseSlots = base

	return &policy, nil
}

// GetPolicy возвращает недельную политику
func (s *Service) GetPolicy(ctx context.Context) (*models.PolicyResponse, error) {
	policy, err := s.LoadPolicy(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainPolicy(policy), nil
}

// SetWeekendFlag открывает или закрывает субботу/воскресенье
// Меняется только один флаг, блокировки на даты и слоты не трогаются
func (s *Service) SetWeekendFlag(ctx context.Context, req *models.SetWeekendFlagRequest) (*models.PolicyResponse, error) {
	s.logger.Info("SetWeekendFlag: day=%s, open=%t", req.Day, req.Open)

	var result *domain.WeeklyPolicy

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		policy, err := s.LoadPolicy(txCtx)
		if err != nil {
			return err
		}

		updated, err := policy.WithWeekendFlag(req.Day, req.Open)
		if err != nil {
			s.logger.Warn("SetWeekendFlag: %v", err)
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}

		if err := s.policyRepo.SetWeekendFlag(txCtx, updated, req.Day); err != nil {
			s.logger.Error("SetWeekendFlag: failed to save flag: %v", err)
			return fmt.Errorf("%w: SetWeekendFlag - repository error: %w", ErrInternal, err)
		}

		result = &updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("SetWeekendFlag: saved day=%s, open=%t", req.Day, req.Open)
	return models.FromDomainPolicy(result), nil
}

// SetWeekdaySlots заменяет базовые слоты дня недели
func (s *Service) SetWeekdaySlots(ctx context.Context, req *models.SetWeekdaySlotsRequest) (*models.PolicyResponse, error) {
	s.logger.Info("SetWeekdaySlots: weekday=%s, slots=%v", req.Weekday, req.Slots)

	if len(req.Slots) > domain.MaxSlotsPerWeekday {
		return nil, fmt.Errorf("%w: at most %d slots per weekday", ErrInvalidInput, domain.MaxSlotsPerWeekday)
	}

	slots, err := types.ParseTimeStrings(req.Slots)
	if err != nil {
		s.logger.Warn("SetWeekdaySlots: invalid slots: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var result *domain.WeeklyPolicy

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		policy, err := s.LoadPolicy(txCtx)
		if err != nil {
			return err
		}

		updated, err := policy.WithBaseSlots(req.Weekday, slots)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}

		if err := s.policyRepo.ReplaceForWeekday(txCtx, req.Weekday, updated.SlotsFor(req.Weekday)); err != nil {
			s.logger.Error("SetWeekdaySlots: failed to save slots: %v", err)
			return fmt.Errorf("%w: SetWeekdaySlots - repository error: %w", ErrInternal, err)
		}

		result = &updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("SetWeekdaySlots: saved %d slots for %s", len(result.SlotsFor(req.Weekday)), req.Weekday)
	return models.FromDomainPolicy(result), nil
}

// GetOverride возвращает блокировки на дату или nil, если их нет
func (s *Service) GetOverride(ctx context.Context, date time.Time) (*domain.DateOverride, error) {
	override, err := s.overrideRepo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, overrideRepo.ErrOverrideNotFound) {
			return nil, nil
		}
		s.logger.Error("GetOverride: failed to get override for %s: %v", domain.FormatDate(date), err)
		return nil, fmt.Errorf("%w: GetOverride - repository error: %w", ErrInternal, err)
	}
	return override, nil
}

// GetOverrideEditor данные редактора блокировок: известные слоты дня и текущие блокировки
func (s *Service) GetOverrideEditor(ctx context.Context, date time.Time) (*models.OverrideEditorResponse, error) {
	s.logger.Info("GetOverrideEditor: date=%s", domain.FormatDate(date))

	policy, err := s.LoadPolicy(ctx)
	if err != nil {
		return nil, err
	}

	override, err := s.GetOverride(ctx, date)
	if err != nil {
		return nil, err
	}

	blocked := []types.TimeString{}
	if override != nil {
		blocked = override.BlockedTimes
	}

	return &models.OverrideEditorResponse{
		Date:          domain.FormatDate(date),
		Closed:        domain.IsDayClosed(date, *policy),
		KnownSlots:    types.StringsOf(domain.UnionOfKnownAndBlockedSlots(date, *policy, override)),
		BlockedTimes:  types.StringsOf(blocked),
		ResolvedSlots: types.StringsOf(domain.ResolveSlots(date, *policy, override)),
	}, nil
}

// ListOverrides блокировки за период
func (s *Service) ListOverrides(ctx context.Context, from, to time.Time) (*models.OverrideListResponse, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: 'to' is before 'from'", ErrInvalidInput)
	}

	overrides, err := s.overrideRepo.GetRange(ctx, from, to)
	if err != nil {
		s.logger.Error("ListOverrides: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListOverrides - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainOverrideList(overrides), nil
}

// SaveOverride сохраняет список блокировок на дату целиком
// Времена вне базовых слотов сохраняются и игнорируются при расчете
func (s *Service) SaveOverride(ctx context.Context, req *models.SaveOverrideRequest) (*models.OverrideResponse, error) {
	s.logger.Info("SaveOverride: date=%s, blocked=%v", domain.FormatDate(req.Date), req.BlockedTimes)

	blocked, err := types.ParseTimeStrings(req.BlockedTimes)
	if err != nil {
		s.logger.Warn("SaveOverride: invalid blocked times: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	saved, err := s.overrideRepo.Upsert(ctx, &domain.DateOverride{
		Date:         domain.DateOnly(req.Date),
		BlockedTimes: types.UniqueSorted(blocked),
	})
	if err != nil {
		s.logger.Error("SaveOverride: failed to save override: %v", err)
		return nil, fmt.Errorf("%w: SaveOverride - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("SaveOverride: saved %d blocked times for %s", len(saved.BlockedTimes), domain.FormatDate(saved.Date))
	return models.FromDomainOverride(saved), nil
}
