package models

// Роли отправителей сообщений чата.
const (
	ChatRoleUser = "user"
	ChatRoleAI   = "ai"
)

// ChatMessage — одно сообщение в переписке с ассистентом.
// Ответы ассистента могут содержать список рекомендованных курсов.
type ChatMessage struct {
	ID          string            `json:"id"`
	Type        string            `json:"type"` // user, ai
	Content     string            `json:"content"`
	Timestamp   string            `json:"timestamp"`
	Suggestions []SuggestedCourse `json:"suggestions,omitempty"`
}
