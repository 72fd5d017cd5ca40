package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
)

const baseURL = "https://wa.me/"

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Composer собирает тексты напоминаний и ссылки wa.me
// Сама отправка выполняется оператором вручную
type Composer struct {
	studioName string
}

// NewComposer создает Composer с подписью студии
func NewComposer(studioName string) *Composer {
	return &Composer{studioName: studioName}
}

// Compose собирает напоминание нужного вида
func (c *Composer) Compose(kind domain.ReminderKind, b *domain.Booking) (*Reminder, error) {
	var message string
	switch kind {
	case domain.ReminderDayBefore:
		message = c.DayBeforeMessage(b)
	case domain.ReminderMaintenance:
		message = c.MaintenanceMessage(b)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	phone := PhoneDigits(b.ClientContact)
	if phone == "" {
		return nil, fmt.Errorf("%w: booking %s", ErrNoPhoneDigits, b.ID)
	}

	return &Reminder{
		Phone:   phone,
		Message: message,
		Link:    Link(phone, message),
	}, nil
}

// DayBeforeMessage текст напоминания за день до визита
func (c *Composer) DayBeforeMessage(b *domain.Booking) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Olá, %s! Tudo bem? ✨ Passando para lembrar com carinho do seu horário agendado conosco amanhã! Mal podemos esperar para te receber.\n\n", b.ClientName)
	fmt.Fprintf(&sb, "*Procedimento:* %s\n", b.ProcedureName)
	fmt.Fprintf(&sb, "*Data:* %s (Amanhã)\n", longDate(b))
	fmt.Fprintf(&sb, "*Hora:* %s\n\n", b.Time)
	sb.WriteString("Por favor, confirme sua presença respondendo a esta mensagem. Se precisar remarcar, nos avise com o máximo de antecedência possível, ok? 😊\n\n")
	sb.WriteString("Até breve!\n")
	sb.WriteString(c.signature())

	return sb.String()
}

// MaintenanceMessage текст приглашения на поддерживающую процедуру после визита
func (c *Composer) MaintenanceMessage(b *domain.Booking) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Olá, %s! Tudo bem? ✨ Obrigada por ter vindo ao nosso studio no dia %s.\n\n", b.ClientName, longDate(b))
	fmt.Fprintf(&sb, "Já está chegando a hora da manutenção do seu procedimento (*%s*) para manter o resultado sempre lindo.\n\n", b.ProcedureName)
	sb.WriteString("Quer que a gente reserve um horário para você? É só responder esta mensagem. 😊\n\n")
	sb.WriteString(c.signature())

	return sb.String()
}

func (c *Composer) signature() string {
	return c.studioName + " ❤️"
}

// PhoneDigits оставляет в контакте только цифры
func PhoneDigits(contact string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, contact)
}

// Link ссылка на чат с готовым текстом
// Пробелы кодируются как %20, как это делает encodeURIComponent в браузере
func Link(phone, message string) string {
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return baseURL + phone + "?text=" + text
}

func longDate(b *domain.Booking) string {
	return fmt.Sprintf("%02d de %s", b.Date.Day(), monthNames[b.Date.Month()-1])
}
