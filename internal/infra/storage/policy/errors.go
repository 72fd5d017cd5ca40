package policy

import "errors"

var (
	// ErrPolicyNotFound возвращается, когда недельная политика еще не сохранялась
	ErrPolicyNotFound = errors.New("policy.repository: policy not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("policy.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("policy.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("policy.repository: failed to scan row")

	// ErrInvalidWeekday возвращается для дня недели вне диапазона 0-6
	ErrInvalidWeekday = errors.New("policy.repository: invalid weekday")

	// ErrInvalidStoredTime возвращается, если в базе лежит время в неверном формате
	ErrInvalidStoredTime = errors.New("policy.repository: invalid stored time")
)
