package mark_reminder_sent

// MarkSentRequest HTTP request model
// Тело необязательно; token освобождает захват, полученный через claim
type MarkSentRequest struct {
	Token string `json:"token,omitempty"`
}
