package booking

import (
	"github.com/williamfinanuber/lariagendamentos/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
