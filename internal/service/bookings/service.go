package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	bookingRepo "github.com/williamfinanuber/lariagendamentos/internal/infra/storage/booking"
	"github.com/williamfinanuber/lariagendamentos/internal/service/bookings/models"
)

const (
	resultOK          = "ok"
	resultRejected    = "rejected"
	resultAlreadySent = "already_sent"
	resultError       = "error"
)

// Service сервис для работы с бронированиями
// Каждое изменение записи выполняется целиком или не выполняется вовсе:
// чтение с блокировкой, чистый переход, сохранение в одной транзакции
type Service struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с фильтрацией по периоду и статусам
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, from=%v, to=%v, statuses=%v", req.StartDate, req.EndDate, req.Statuses)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.GetByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Confirm pending → confirmed
func (s *Service) Confirm(ctx context.Context, id string) (*models.BookingResponse, error) {
	return s.Transition(ctx, id, domain.ActionConfirm)
}

// Complete confirmed → completed
func (s *Service) Complete(ctx context.Context, id string) (*models.BookingResponse, error) {
	return s.Transition(ctx, id, domain.ActionComplete)
}

// Cancel pending|confirmed → cancelled
func (s *Service) Cancel(ctx context.Context, id string) (*models.BookingResponse, error) {
	return s.Transition(ctx, id, domain.ActionCancel)
}

// Transition применяет действие к бронированию
// Недопустимый переход возвращает ошибку, оборачивающую domain.ErrInvalidTransition, запись не меняется
func (s *Service) Transition(ctx context.Context, id string, action domain.BookingAction) (*models.BookingResponse, error) {
	s.logger.Info("Transition: booking id=%s, action=%s", id, action)

	var result *domain.Booking

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.load(txCtx, "Transition", id)
		if err != nil {
			return err
		}

		updated, err := domain.Apply(booking, action)
		if err != nil {
			s.logger.Warn("Transition: %v", err)
			return err
		}

		now := s.timeProvider.Now()
		switch updated.Status {
		case domain.StatusCompleted:
			updated.CompletedAt = &now
		case domain.StatusCancelled:
			updated.CancelledAt = &now
		}
		updated.UpdatedAt = now

		if err := s.save(txCtx, "Transition", updated); err != nil {
			return err
		}

		result = updated
		return nil
	})

	if err != nil {
		s.metrics.ObserveTransition(string(action), transitionResult(err))
		return nil, err
	}

	s.metrics.ObserveTransition(string(action), resultOK)
	s.logger.Info("Transition: booking id=%s is now %s", id, result.Status)
	return models.FromDomainBooking(result), nil
}

// MarkReminderSent отмечает отправку напоминания нужного вида
// Повторная отметка не ошибка: возвращается AlreadySent = true и запись не меняется
func (s *Service) MarkReminderSent(ctx context.Context, id string, kind domain.ReminderKind) (*models.MarkReminderResponse, error) {
	s.logger.Info("MarkReminderSent: booking id=%s, kind=%s", id, kind)

	var result *domain.Booking
	alreadySent := false

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// повтор транзакции начинается с чистого состояния
		alreadySent = false

		booking, err := s.load(txCtx, "MarkReminderSent", id)
		if err != nil {
			return err
		}

		updated, err := kind.MarkSent(booking)
		if errors.Is(err, domain.ErrAlreadySent) {
			s.logger.Info("MarkReminderSent: booking id=%s already has %s reminder", id, kind)
			result = booking
			alreadySent = true
			return nil
		}
		if err != nil {
			s.logger.Warn("MarkReminderSent: %v", err)
			return err
		}

		updated.UpdatedAt = s.timeProvider.Now()

		if err := s.save(txCtx, "MarkReminderSent", updated); err != nil {
			return err
		}

		result = updated
		return nil
	})

	switch {
	case err != nil && errors.Is(err, domain.ErrNotCompleted):
		s.metrics.ObserveReminderMark(string(kind), resultRejected)
		return nil, err
	case err != nil:
		s.metrics.ObserveReminderMark(string(kind), resultError)
		return nil, err
	case alreadySent:
		s.metrics.ObserveReminderMark(string(kind), resultAlreadySent)
	default:
		s.metrics.ObserveReminderMark(string(kind), resultOK)
	}

	return &models.MarkReminderResponse{
		Booking:     models.FromDomainBooking(result),
		AlreadySent: alreadySent,
	}, nil
}

func (s *Service) load(ctx context.Context, op, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
	return booking, nil
}

func (s *Service) save(ctx context.Context, op string, booking *domain.Booking) error {
	if err := s.bookingRepo.Save(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("%s: failed to save booking id=%s: %v", op, booking.ID, err)
		return fmt.Errorf("%w: %s - save booking: %w", ErrInternal, op, err)
	}
	return nil
}

func transitionResult(err error) string {
	if errors.Is(err, domain.ErrInvalidTransition) {
		return resultRejected
	}
	return resultError
}
