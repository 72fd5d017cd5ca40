package reminders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	"github.com/williamfinanuber/lariagendamentos/internal/infra/cache/sendguard"
	bookingRepo "github.com/williamfinanuber/lariagendamentos/internal/infra/storage/booking"
	"github.com/williamfinanuber/lariagendamentos/internal/integrations/whatsapp"
	"github.com/williamfinanuber/lariagendamentos/internal/service/bookings/models"
	"github.com/williamfinanuber/lariagendamentos/pkg/ptr"
)

// UseCase очереди напоминаний и отправка "не более одного раза":
// claim (захват в redis) → оператор отправляет сообщение → sent (флаг) либо release
type UseCase struct {
	bookingRepo  BookingRepository
	marker       ReminderMarker
	guard        SendGuard
	composer     MessageComposer
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	marker ReminderMarker,
	guard SendGuard,
	composer MessageComposer,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		marker:       marker,
		guard:        guard,
		composer:     composer,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{Location: location},
		logger:       logger,
	}
}

// DayBefore очередь напоминаний накануне
// today нулевой - берется текущая дата студии
func (uc *UseCase) DayBefore(ctx context.Context, today time.Time) (*Worklist, error) {
	if today.IsZero() {
		today = uc.timeProvider.Now()
	}
	today = domain.DateOnly(today)
	tomorrow := today.AddDate(0, 0, 1)

	bookings, err := uc.bookingRepo.GetByFilter(ctx, domain.BookingFilter{
		StartDate:    &tomorrow,
		EndDate:      &tomorrow,
		Statuses:     []domain.BookingStatus{domain.StatusConfirmed},
		ReminderSent: ptr.Ptr(false),
	})
	if err != nil {
		uc.logger.Error("DayBefore: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
	}

	due := domain.DueDayBeforeReminders(bookings, today)
	uc.metrics.SetRemindersDue(string(domain.ReminderDayBefore), len(due))
	uc.logger.Info("DayBefore: %d reminders due for %s", len(due), domain.FormatDate(tomorrow))

	return &Worklist{
		Kind:  domain.ReminderDayBefore,
		Today: today,
		Items: uc.compose(domain.ReminderDayBefore, due),
	}, nil
}

// Maintenance очередь сообщений о поддерживающей процедуре, старые первыми
func (uc *UseCase) Maintenance(ctx context.Context) (*Worklist, error) {
	bookings, err := uc.bookingRepo.GetByFilter(ctx, domain.BookingFilter{
		Statuses:                []domain.BookingStatus{domain.StatusCompleted},
		MaintenanceReminderSent: ptr.Ptr(false),
	})
	if err != nil {
		uc.logger.Error("Maintenance: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
	}

	due := domain.DueMaintenanceOutreach(bookings)
	uc.metrics.SetRemindersDue(string(domain.ReminderMaintenance), len(due))
	uc.logger.Info("Maintenance: %d outreach messages due", len(due))

	return &Worklist{
		Kind:  domain.ReminderMaintenance,
		Items: uc.compose(domain.ReminderMaintenance, due),
	}, nil
}

func (uc *UseCase) compose(kind domain.ReminderKind, due []*domain.Booking) []WorklistItem {
	items := make([]WorklistItem, 0, len(due))
	for _, b := range due {
		item := WorklistItem{Booking: b}
		msg, err := uc.composer.Compose(kind, b)
		if err != nil {
			uc.logger.Warn("compose: booking id=%s: %v", b.ID, err)
		} else {
			item.Message = msg
		}
		items = append(items, item)
	}
	return items
}

// Claim захватывает отправку и возвращает готовое сообщение
// Если флаг уже стоит, захват не выполняется и возвращается AlreadySent = true
func (uc *UseCase) Claim(ctx context.Context, req *ClaimRequest) (*ClaimResponse, error) {
	if err := validateKindRequest(req.BookingID, req.Kind); err != nil {
		return nil, err
	}

	uc.logger.Info("Claim: booking id=%s, kind=%s", req.BookingID, req.Kind)

	booking, err := uc.load(ctx, "Claim", req.BookingID)
	if err != nil {
		return nil, err
	}

	if req.Kind.IsSent(booking) {
		uc.logger.Info("Claim: booking id=%s already has %s reminder", booking.ID, req.Kind)
		return &ClaimResponse{Booking: booking, AlreadySent: true}, nil
	}

	if err := checkEligible(booking, req.Kind); err != nil {
		uc.logger.Warn("Claim: %v", err)
		return nil, err
	}

	msg, err := uc.composer.Compose(req.Kind, booking)
	if err != nil {
		if errors.Is(err, whatsapp.ErrNoPhoneDigits) {
			return nil, fmt.Errorf("%w: booking %s", ErrInvalidContact, booking.ID)
		}
		uc.logger.Error("Claim: failed to compose message: %v", err)
		return nil, fmt.Errorf("%w: failed to compose message: %w", ErrInternal, err)
	}

	token, err := uc.guard.Claim(ctx, booking.ID, req.Kind)
	if err != nil {
		if errors.Is(err, sendguard.ErrClaimHeld) {
			return nil, ErrClaimHeld
		}
		uc.logger.Error("Claim: failed to claim booking id=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to claim: %w", ErrInternal, err)
	}

	return &ClaimResponse{
		Booking: booking,
		Token:   token,
		Message: msg,
	}, nil
}

// Release освобождает захват после неудачной отправки; флаг не меняется,
// поэтому бронирование остается в очереди
func (uc *UseCase) Release(ctx context.Context, req *ReleaseRequest) error {
	if err := validateKindRequest(req.BookingID, req.Kind); err != nil {
		return err
	}
	if strings.TrimSpace(req.Token) == "" {
		return fmt.Errorf("%w: token is required", ErrInvalidInput)
	}

	uc.logger.Info("Release: booking id=%s, kind=%s", req.BookingID, req.Kind)

	if err := uc.guard.Release(ctx, req.BookingID, req.Kind, req.Token); err != nil {
		if errors.Is(err, sendguard.ErrClaimNotOwned) {
			return ErrClaimNotOwned
		}
		uc.logger.Error("Release: failed to release booking id=%s: %v", req.BookingID, err)
		return fmt.Errorf("%w: failed to release: %w", ErrInternal, err)
	}
	return nil
}

// Sent отмечает успешную отправку и освобождает захват
// Ошибки сервиса бронирований возвращаются как есть (ErrNotCompleted, not found)
func (uc *UseCase) Sent(ctx context.Context, req *SentRequest) (*models.MarkReminderResponse, error) {
	if err := validateKindRequest(req.BookingID, req.Kind); err != nil {
		return nil, err
	}

	resp, err := uc.marker.MarkReminderSent(ctx, req.BookingID, req.Kind)
	if err != nil {
		return nil, err
	}

	if req.Token != "" {
		// флаг уже стоит, захват истечет сам, если освободить не удалось
		if err := uc.guard.Release(ctx, req.BookingID, req.Kind, req.Token); err != nil {
			uc.logger.Warn("Sent: release claim for booking id=%s: %v", req.BookingID, err)
		}
	}

	return resp, nil
}

func (uc *UseCase) load(ctx context.Context, op, id string) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("%s: failed to get booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
	}
	return booking, nil
}

// checkEligible отмененным не пишем; поддерживающая процедура только после завершения
func checkEligible(b *domain.Booking, kind domain.ReminderKind) error {
	if b.Status == domain.StatusCancelled {
		return fmt.Errorf("%w: booking %s is cancelled", ErrNotEligible, b.ID)
	}
	if kind == domain.ReminderMaintenance && b.Status != domain.StatusCompleted {
		return fmt.Errorf("%w: booking %s is %s", domain.ErrNotCompleted, b.ID, b.Status)
	}
	return nil
}

func validateKindRequest(bookingID string, kind domain.ReminderKind) error {
	if strings.TrimSpace(bookingID) == "" {
		return fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}
	if _, err := domain.ParseReminderKind(string(kind)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}
