package get_available_slots

import (
	"context"
	"fmt"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
)

// UseCase use case для получения слотов на дату с отметкой занятости
type UseCase struct {
	bookingRepo  BookingRepository
	policyLoader PolicyLoader
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	policyLoader PolicyLoader,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		policyLoader: policyLoader,
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
// Закрытый день не ошибка: возвращается пустой список и Closed = true
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	uc.logger.Info("GetAvailableSlots: date=%s", domain.FormatDate(date))

	// 2. Получаем недельную политику
	policy, err := uc.policyLoader.LoadPolicy(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load policy: %v", err)
		return nil, fmt.Errorf("%w: failed to load policy: %w", ErrInternal, err)
	}

	if domain.IsDayClosed(date, *policy) {
		uc.logger.Info("GetAvailableSlots: %s is closed", domain.FormatDate(date))
		return &Response{Date: date, Closed: true, Slots: []Slot{}}, nil
	}

	// 3. Получаем блокировки на дату
	override, err := uc.policyLoader.GetOverride(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get override: %v", err)
		return nil, fmt.Errorf("%w: failed to get override: %w", ErrInternal, err)
	}

	resolved := domain.ResolveSlots(date, *policy, override)
	if len(resolved) == 0 {
		return &Response{Date: date, Slots: []Slot{}}, nil
	}

	// 4. Получаем активные бронирования на эту дату
	bookings, err := uc.bookingRepo.GetByFilter(ctx, domain.BookingFilter{
		StartDate: &date,
		EndDate:   &date,
		Statuses:  domain.ActiveStatuses,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
	}

	// 5. Отмечаем занятость каждого слота
	marked := domain.MarkOccupancy(date, resolved, bookings)
	slots := make([]Slot, len(marked))
	free := 0
	for i, s := range marked {
		slots[i] = Slot{StartTime: s.Time, Available: s.Available, BookingID: s.BookingID}
		if s.Available {
			free++
		}
	}

	uc.logger.Info("GetAvailableSlots: %d slots on %s, %d free", len(slots), domain.FormatDate(date), free)

	return &Response{Date: date, Slots: slots}, nil
}
