package whatsapp

import "errors"

var (
	// ErrNoPhoneDigits возвращается, если в контакте клиента нет цифр
	ErrNoPhoneDigits = errors.New("whatsapp: contact has no phone digits")

	// ErrUnknownKind возвращается для неизвестного вида напоминания
	ErrUnknownKind = errors.New("whatsapp: unknown reminder kind")
)
