package create_booking

import (
	"time"

	"github.com/williamfinanuber/lariagendamentos/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Время слота (например, "10:00")
	ClientName    string           // Имя клиента
	ClientContact string           // Телефон клиента
	ProcedureID   string           // ID процедуры
	ProcedureName string           // Название процедуры
	Notes         *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            string           // ID созданного бронирования
	Date          time.Time        // Дата бронирования
	StartTime     types.TimeString // Время начала
	ClientName    string
	ClientContact string
	ProcedureID   string
	ProcedureName string
	Notes         *string
	Status        string // Всегда pending

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
