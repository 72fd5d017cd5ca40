package whatsapp

// Reminder готовое сообщение и ссылка на чат с клиентом
type Reminder struct {
	Phone   string
	Message string
	Link    string
}
