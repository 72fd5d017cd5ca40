package get_available_slots

import (
	"time"

	"github.com/williamfinanuber/lariagendamentos/pkg/types"
)

// Request модель запроса на получение слотов
type Request struct {
	Date time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов на дату
type Response struct {
	Date   time.Time // Дата, на которую запрашивались слоты
	Closed bool      // День недели закрыт политикой
	Slots  []Slot    // Слоты после вычета блокировок, по возрастанию времени
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "10:00")
	Available bool             // Слот свободен
	BookingID string           // Бронирование, занимающее слот (пусто, если свободен)
}
