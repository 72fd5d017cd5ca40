package reschedule_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	bookingRepo "github.com/williamfinanuber/lariagendamentos/internal/infra/storage/booking"
)

// UseCase use case для переноса бронирования на другую дату/время
type UseCase struct {
	bookingRepo  BookingRepository
	policyLoader PolicyLoader
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	policyLoader PolicyLoader,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		policyLoader: policyLoader,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{Location: location},
		logger:       logger,
	}
}

// Execute выполняет перенос
// Флаги напоминаний не сбрасываются: они монотонны
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	uc.logger.Info("RescheduleBooking: booking id=%s, date=%s, time=%s",
		req.BookingID, domain.FormatDate(date), req.StartTime)

	now := uc.timeProvider.Now()
	if isDateInPast(date, now) {
		uc.logger.Warn("RescheduleBooking: date %s is in the past", domain.FormatDate(date))
		return nil, ErrInvalidDate
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Загружаем бронирование с блокировкой строки
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("RescheduleBooking: booking id=%s not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		if booking.IsTerminal() {
			uc.logger.Warn("RescheduleBooking: booking id=%s is %s", booking.ID, booking.Status)
			return fmt.Errorf("%w: booking %s is %s", ErrNotReschedulable, booking.ID, booking.Status)
		}

		if domain.SameDate(booking.Date, date) && booking.Time == req.StartTime {
			result = &Response{Booking: booking}
			return nil
		}

		// 2. Новый слот должен существовать на дату
		policy, err := uc.policyLoader.LoadPolicy(txCtx)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to load policy: %v", err)
			return fmt.Errorf("%w: failed to load policy: %w", ErrInternal, err)
		}

		if domain.IsDayClosed(date, *policy) {
			uc.logger.Warn("RescheduleBooking: %s is closed", domain.FormatDate(date))
			return ErrDayClosed
		}

		override, err := uc.policyLoader.GetOverride(txCtx, date)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get override: %v", err)
			return fmt.Errorf("%w: failed to get override: %w", ErrInternal, err)
		}

		if !domain.IsResolvedSlot(date, req.StartTime, *policy, override) {
			uc.logger.Warn("RescheduleBooking: %s is not a bookable slot on %s", req.StartTime, domain.FormatDate(date))
			return ErrInvalidTimeSlot
		}

		// 3. Проверяем конфликт, не считая само бронирование
		bookings, err := uc.bookingRepo.GetByFilter(txCtx, domain.BookingFilter{
			StartDate: &date,
			EndDate:   &date,
			Statuses:  domain.ActiveStatuses,
		})
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		if err := domain.EnsureSlotAvailable(date, req.StartTime, bookings, booking.ID); err != nil {
			uc.logger.Warn("RescheduleBooking: %v", err)
			return err
		}

		// 4. Сохраняем
		updated := booking.Clone()
		updated.Date = date
		updated.Time = req.StartTime
		updated.UpdatedAt = now

		if err := uc.bookingRepo.Save(txCtx, updated); err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return &domain.SlotConflictError{Date: domain.FormatDate(date), Time: req.StartTime}
			}
			uc.logger.Error("RescheduleBooking: failed to save booking id=%s: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to save booking: %w", ErrInternal, err)
		}

		result = &Response{Booking: updated, Moved: true}
		return nil
	})

	if err != nil {
		return nil, err
	}

	if result.Moved {
		uc.logger.Info("RescheduleBooking: booking id=%s moved to %s %s",
			req.BookingID, domain.FormatDate(date), req.StartTime)
	}
	return result, nil
}
