package override

import (
	"github.com/williamfinanuber/lariagendamentos/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
