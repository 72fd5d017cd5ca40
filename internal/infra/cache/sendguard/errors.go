package sendguard

import "errors"

var (
	// ErrClaimHeld возвращается, когда отправку уже захватил другой оператор
	ErrClaimHeld = errors.New("sendguard: claim is held by another operator")

	// ErrClaimNotOwned возвращается при освобождении чужого или истекшего захвата
	ErrClaimNotOwned = errors.New("sendguard: claim not owned")

	// ErrRedis возвращается при ошибках redis
	ErrRedis = errors.New("sendguard: redis error")
)
