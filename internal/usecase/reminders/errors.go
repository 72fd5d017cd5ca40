package reminders

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reminders: booking not found")

	// ErrNotEligible возвращается, когда отменённому бронированию пытаются отправить напоминание
	ErrNotEligible = errors.New("reminders: booking is not eligible for this reminder")

	// ErrClaimHeld возвращается, когда отправку уже захватил другой оператор
	ErrClaimHeld = errors.New("reminders: reminder is being sent by another operator")

	// ErrClaimNotOwned возвращается при освобождении чужого или истекшего захвата
	ErrClaimNotOwned = errors.New("reminders: claim not owned or expired")

	// ErrInvalidContact возвращается, когда по контакту клиента нельзя построить ссылку
	ErrInvalidContact = errors.New("reminders: client contact has no phone number")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reminders: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reminders: internal error")
)
