package create_booking

import "errors"

var (
	// ErrInvalidDate возвращается, когда дата бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: booking date is in the past")

	// ErrDayClosed возвращается, когда день недели закрыт политикой
	ErrDayClosed = errors.New("create_booking: studio is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда время не входит в слоты даты (нет в шаблоне или заблокировано)
	ErrInvalidTimeSlot = errors.New("create_booking: time is not a bookable slot on this date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
