package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	bookingRepo "github.com/williamfinanuber/lariagendamentos/internal/infra/storage/booking"
)

const (
	resultOK       = "ok"
	resultConflict = "conflict"
	resultRejected = "rejected"
	resultError    = "error"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	policyLoader PolicyLoader
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// location - часовой пояс студии, по нему определяется "сегодня"
func NewUseCase(
	bookingRepo BookingRepository,
	policyLoader PolicyLoader,
	txManager TransactionManager,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		policyLoader: policyLoader,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{Location: location},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка слота и запись выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	result, err := uc.execute(ctx, req)
	uc.metrics.ObserveBookingCreated(creationResult(err))
	return result, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	uc.logger.Info("CreateBooking: date=%s, time=%s, procedure=%s",
		domain.FormatDate(date), req.StartTime, req.ProcedureID)

	// 2. Дата не может быть в прошлом
	if isDateInPast(date, uc.timeProvider.Now()) {
		uc.logger.Warn("CreateBooking: date %s is in the past", domain.FormatDate(date))
		return nil, ErrInvalidDate
	}

	var result *domain.Booking

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем политику и блокировки на дату
		policy, err := uc.policyLoader.LoadPolicy(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to load policy: %v", err)
			return fmt.Errorf("%w: failed to load policy: %w", ErrInternal, err)
		}

		if domain.IsDayClosed(date, *policy) {
			uc.logger.Warn("CreateBooking: %s is closed", domain.FormatDate(date))
			return ErrDayClosed
		}

		override, err := uc.policyLoader.GetOverride(txCtx, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get override: %v", err)
			return fmt.Errorf("%w: failed to get override: %w", ErrInternal, err)
		}

		// 3.2. Время должно быть среди слотов даты
		if !domain.IsResolvedSlot(date, req.StartTime, *policy, override) {
			uc.logger.Warn("CreateBooking: %s is not a bookable slot on %s", req.StartTime, domain.FormatDate(date))
			return ErrInvalidTimeSlot
		}

		// 3.3. Получаем активные бронирования на дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByFilter(txCtx, domain.BookingFilter{
			StartDate: &date,
			EndDate:   &date,
			Statuses:  domain.ActiveStatuses,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// 3.4. Проверяем, что слот свободен
		if err := domain.EnsureSlotAvailable(date, req.StartTime, bookings, ""); err != nil {
			uc.logger.Warn("CreateBooking: %v", err)
			return err
		}

		// 3.5. Создаем бронирование в статусе pending
		booking := &domain.Booking{
			ID:            uuid.NewString(),
			Date:          date,
			Time:          req.StartTime,
			ClientName:    strings.TrimSpace(req.ClientName),
			ClientContact: strings.TrimSpace(req.ClientContact),
			ProcedureID:   req.ProcedureID,
			ProcedureName: req.ProcedureName,
			Notes:         req.Notes,
			Status:        domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				// слот занят параллельной записью, которую не увидел снимок
				uc.logger.Warn("CreateBooking: slot %s %s taken concurrently", domain.FormatDate(date), req.StartTime)
				return &domain.SlotConflictError{Date: domain.FormatDate(date), Time: req.StartTime}
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return &Response{
		ID:            result.ID,
		Date:          result.Date,
		StartTime:     result.Time,
		ClientName:    result.ClientName,
		ClientContact: result.ClientContact,
		ProcedureID:   result.ProcedureID,
		ProcedureName: result.ProcedureName,
		Notes:         result.Notes,
		Status:        string(result.Status),
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

func creationResult(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, domain.ErrSlotConflict):
		return resultConflict
	case errors.Is(err, ErrInternal):
		return resultError
	default:
		return resultRejected
	}
}
