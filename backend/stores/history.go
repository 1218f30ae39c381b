package stores

import (
	"encoding/json"
	"log"
	"time"

	"smartedu/backend/models"
)

// История просмотров хранит не более DefaultHistoryLimit записей.
const DefaultHistoryLimit = 50

// History — история просмотров сессии, упорядоченная от недавних к старым.
// Повторный просмотр курса переносит запись в начало с новой отметкой
// времени, дубликаты не создаются.
type History struct {
	storage   Storage
	logger    *log.Logger
	sessionID string
	limit     int
	hydrated  bool
	items     []models.ViewedCourse

	// Now подменяется в тестах для детерминированных отметок времени.
	Now func() time.Time
}

// OpenHistory загружает историю просмотров сессии. Повреждённое значение
// отбрасывается, коллекция начинается пустой. limit <= 0 заменяется
// значением по умолчанию.
func OpenHistory(storage Storage, logger *log.Logger, sessionID string, limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	h := &History{
		storage:   storage,
		logger:    logger,
		sessionID: sessionID,
		limit:     limit,
		Now:       time.Now,
	}

	blob, err := storage.Get(sessionID, ViewHistoryKey)
	if err != nil {
		logger.Printf("history: read failed for session %s: %v", sessionID, err)
	} else if blob != nil {
		if err := json.Unmarshal(blob, &h.items); err != nil {
			logger.Printf("history: discarding corrupt state for session %s: %v", sessionID, err)
			h.items = nil
			if err := storage.Delete(sessionID, ViewHistoryKey); err != nil {
				logger.Printf("history: delete failed for session %s: %v", sessionID, err)
			}
		}
	}

	h.hydrated = true
	return h
}

// Items возвращает историю от недавних записей к старым.
func (h *History) Items() []models.ViewedCourse {
	return h.items
}

func (h *History) Count() int {
	return len(h.items)
}

// Contains проверяет, есть ли курс в истории.
func (h *History) Contains(courseID string) bool {
	for _, item := range h.items {
		if item.ID == courseID {
			return true
		}
	}
	return false
}

// Add записывает просмотр курса. Существующая запись того же курса
// удаляется, новая встаёт в начало; затем история усекается до лимита,
// отбрасывая самые старые просмотры.
func (h *History) Add(course models.Course) {
	kept := make([]models.ViewedCourse, 0, len(h.items)+1)
	kept = append(kept, models.ViewedCourse{
		Course:   course,
		ViewedAt: h.Now().UTC().Format(time.RFC3339),
	})
	for _, item := range h.items {
		if item.ID != course.ID {
			kept = append(kept, item)
		}
	}

	if len(kept) > h.limit {
		kept = kept[:h.limit]
	}

	h.items = kept
	h.persist()
}

// Remove удаляет запись о курсе. Возвращает true, если запись была найдена.
func (h *History) Remove(courseID string) bool {
	for i, item := range h.items {
		if item.ID == courseID {
			h.items = append(h.items[:i], h.items[i+1:]...)
			h.persist()
			return true
		}
	}
	return false
}

// Clear очищает историю просмотров.
func (h *History) Clear() {
	h.items = nil
	h.persist()
}

func (h *History) persist() {
	if !h.hydrated {
		return
	}
	blob, err := json.Marshal(h.items)
	if err != nil {
		h.logger.Printf("history: marshal failed for session %s: %v", h.sessionID, err)
		return
	}
	if err := h.storage.Put(h.sessionID, ViewHistoryKey, blob); err != nil {
		h.logger.Printf("history: write failed for session %s: %v", h.sessionID, err)
	}
}
