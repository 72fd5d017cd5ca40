package models

import (
	"time"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	"github.com/williamfinanuber/lariagendamentos/pkg/types"
)

// Request модели

// SetWeekendFlagRequest запрос на открытие/закрытие субботы или воскресенья
type SetWeekendFlagRequest struct {
	Day  time.Weekday
	Open bool
}

// SetWeekdaySlotsRequest запрос на замену базовых слотов дня недели
type SetWeekdaySlotsRequest struct {
	Weekday time.Weekday
	Slots   []string
}

// SaveOverrideRequest запрос на сохранение блокировок на дату
type SaveOverrideRequest struct {
	Date         time.Time
	BlockedTimes []string
}

// Response модели

// WeekdaySlots базовые слоты одного дня недели
type WeekdaySlots struct {
	Weekday string   `json:"weekday"`
	Open    bool     `json:"open"`
	Slots   []string `json:"slots"`
}

// PolicyResponse недельная политика
type PolicyResponse struct {
	SaturdayOpen bool           `json:"saturdayOpen"`
	SundayOpen   bool           `json:"sundayOpen"`
	OpenWeekdays []string       `json:"openWeekdays"`
	Weekdays     []WeekdaySlots `json:"weekdays"`
	UpdatedAt    *time.Time     `json:"updatedAt,omitempty"`
}

// OverrideEditorResponse данные для редактора блокировок на дату
type OverrideEditorResponse struct {
	Date          string   `json:"date"`
	Closed        bool     `json:"closed"`
	KnownSlots    []string `json:"knownSlots"`    // базовые слоты дня + все ранее заблокированные
	BlockedTimes  []string `json:"blockedTimes"`
	ResolvedSlots []string `json:"resolvedSlots"` // что увидит клиент
}

// OverrideResponse сохраненные блокировки
type OverrideResponse struct {
	Date         string    `json:"date"`
	BlockedTimes []string  `json:"blockedTimes"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// OverrideListResponse список блокировок за период
type OverrideListResponse struct {
	Overrides []OverrideResponse `json:"overrides"`
}

// Методы конвертации

// FromDomainPolicy конвертирует политику в DTO
func FromDomainPolicy(p *domain.WeeklyPolicy) *PolicyResponse {
	resp := &PolicyResponse{
		SaturdayOpen: p.SaturdayOpen,
		SundayOpen:   p.SundayOpen,
		OpenWeekdays: make([]string, 0, len(domain.Weekdays)),
		Weekdays:     make([]WeekdaySlots, 0, len(domain.Weekdays)),
	}

	for _, wd := range p.OpenWeekdays() {
		resp.OpenWeekdays = append(resp.OpenWeekdays, wd.String())
	}

	for _, wd := range domain.Weekdays {
		resp.Weekdays = append(resp.Weekdays, WeekdaySlots{
			Weekday: wd.String(),
			Open:    p.IsOpen(wd),
			Slots:   types.StringsOf(p.SlotsFor(wd)),
		})
	}

	if !p.UpdatedAt.IsZero() {
		updatedAt := p.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}

// FromDomainOverride конвертирует блокировки в DTO
func FromDomainOverride(o *domain.DateOverride) *OverrideResponse {
	return &OverrideResponse{
		Date:         domain.FormatDate(o.Date),
		BlockedTimes: types.StringsOf(o.BlockedTimes),
		UpdatedAt:    o.UpdatedAt,
	}
}

// FromDomainOverrideList конвертирует список блокировок в DTO
func FromDomainOverrideList(overrides []*domain.DateOverride) *OverrideListResponse {
	resp := &OverrideListResponse{
		Overrides: make([]OverrideResponse, 0, len(overrides)),
	}
	for _, o := range overrides {
		resp.Overrides = append(resp.Overrides, *FromDomainOverride(o))
	}
	return resp
}
