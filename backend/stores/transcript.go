package stores

import (
	"encoding/json"
	"log"
	"time"

	"smartedu/backend/models"
)

// Приветствие ассистента, с которого начинается каждая переписка.
const greetingText = "Xin chào! Tôi là SmartEdu AI Assistant. Tôi có thể giúp bạn tìm kiếm khóa học phù hợp với nhu cầu của bạn. Hãy cho tôi biết bạn muốn học gì nhé! 😊"

// Transcript — переписка сессии с ассистентом. Сообщения только
// добавляются; очистка сбрасывает переписку к одному приветствию.
type Transcript struct {
	storage   Storage
	logger    *log.Logger
	sessionID string
	hydrated  bool
	messages  []models.ChatMessage

	Now func() time.Time
}

// OpenTranscript загружает переписку сессии. Пустая или повреждённая
// переписка засевается приветственным сообщением.
func OpenTranscript(storage Storage, logger *log.Logger, sessionID string) *Transcript {
	t := &Transcript{
		storage:   storage,
		logger:    logger,
		sessionID: sessionID,
		Now:       time.Now,
	}

	blob, err := storage.Get(sessionID, ChatKey)
	if err != nil {
		logger.Printf("chat: read failed for session %s: %v", sessionID, err)
	} else if blob != nil {
		if err := json.Unmarshal(blob, &t.messages); err != nil {
			logger.Printf("chat: discarding corrupt state for session %s: %v", sessionID, err)
			t.messages = nil
			if err := storage.Delete(sessionID, ChatKey); err != nil {
				logger.Printf("chat: delete failed for session %s: %v", sessionID, err)
			}
		}
	}

	t.hydrated = true
	if len(t.messages) == 0 {
		t.messages = []models.ChatMessage{t.greeting()}
	}
	return t
}

// Messages возвращает переписку в хронологическом порядке.
func (t *Transcript) Messages() []models.ChatMessage {
	return t.messages
}

func (t *Transcript) Count() int {
	return len(t.messages)
}

// Append добавляет сообщение в конец переписки.
func (t *Transcript) Append(message models.ChatMessage) {
	t.messages = append(t.messages, message)
	t.persist()
}

// Clear сбрасывает переписку к одному приветственному сообщению.
func (t *Transcript) Clear() {
	t.messages = []models.ChatMessage{t.greeting()}
	t.persist()
}

func (t *Transcript) greeting() models.ChatMessage {
	return models.ChatMessage{
		ID:        "welcome",
		Type:      models.ChatRoleAI,
		Content:   greetingText,
		Timestamp: t.Now().UTC().Format(time.RFC3339),
	}
}

func (t *Transcript) persist() {
	if !t.hydrated {
		return
	}
	blob, err := json.Marshal(t.messages)
	if err != nil {
		t.logger.Printf("chat: marshal failed for session %s: %v", t.sessionID, err)
		return
	}
	if err := t.storage.Put(t.sessionID, ChatKey, blob); err != nil {
		t.logger.Printf("chat: write failed for session %s: %v", t.sessionID, err)
	}
}
