package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrNotReschedulable возвращается для завершенных и отмененных бронирований
	ErrNotReschedulable = errors.New("reschedule_booking: only pending or confirmed bookings can be moved")

	// ErrInvalidDate возвращается, когда новая дата в прошлом
	ErrInvalidDate = errors.New("reschedule_booking: booking date is in the past")

	// ErrDayClosed возвращается, когда день недели закрыт политикой
	ErrDayClosed = errors.New("reschedule_booking: studio is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда время не входит в слоты даты
	ErrInvalidTimeSlot = errors.New("reschedule_booking: time is not a bookable slot on this date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
