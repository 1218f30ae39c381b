package stores

import (
	"encoding/json"
	"log"

	"smartedu/backend/models"
)

// Favorites — избранные курсы сессии. Семантика множества:
// не более одной записи на идентификатор курса.
type Favorites struct {
	storage   Storage
	logger    *log.Logger
	sessionID string
	hydrated  bool
	items     []models.Course
}

// OpenFavorites загружает избранное сессии из хранилища. Повреждённое
// сохранённое значение отбрасывается: коллекция начинается пустой,
// ошибка вызывающему не возвращается.
func OpenFavorites(storage Storage, logger *log.Logger, sessionID string) *Favorites {
	f := &Favorites{storage: storage, logger: logger, sessionID: sessionID}

	blob, err := storage.Get(sessionID, FavoritesKey)
	if err != nil {
		logger.Printf("favorites: read failed for session %s: %v", sessionID, err)
	} else if blob != nil {
		if err := json.Unmarshal(blob, &f.items); err != nil {
			logger.Printf("favorites: discarding corrupt state for session %s: %v", sessionID, err)
			f.items = nil
			if err := storage.Delete(sessionID, FavoritesKey); err != nil {
				logger.Printf("favorites: delete failed for session %s: %v", sessionID, err)
			}
		}
	}

	f.hydrated = true
	return f
}

// Items возвращает избранное в порядке добавления.
func (f *Favorites) Items() []models.Course {
	return f.items
}

func (f *Favorites) Count() int {
	return len(f.items)
}

// Contains проверяет, есть ли курс в избранном.
func (f *Favorites) Contains(courseID string) bool {
	for _, item := range f.items {
		if item.ID == courseID {
			return true
		}
	}
	return false
}

// Add добавляет курс в избранное. Повторное добавление того же
// идентификатора — no-op. Возвращает true, если коллекция изменилась.
func (f *Favorites) Add(course models.Course) bool {
	if f.Contains(course.ID) {
		return false
	}
	f.items = append(f.items, course)
	f.persist()
	return true
}

// Remove удаляет курс из избранного. Возвращает true, если курс был найден.
func (f *Favorites) Remove(courseID string) bool {
	for i, item := range f.items {
		if item.ID == courseID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			f.persist()
			return true
		}
	}
	return false
}

// Toggle добавляет курс, если его нет, иначе удаляет.
// Возвращает true, если курс оказался в избранном.
func (f *Favorites) Toggle(course models.Course) bool {
	if f.Contains(course.ID) {
		f.Remove(course.ID)
		return false
	}
	f.Add(course)
	return true
}

// RemoveMany удаляет несколько курсов за одну запись в хранилище.
func (f *Favorites) RemoveMany(courseIDs []string) int {
	drop := make(map[string]bool, len(courseIDs))
	for _, id := range courseIDs {
		drop[id] = true
	}

	kept := f.items[:0]
	removed := 0
	for _, item := range f.items {
		if drop[item.ID] {
			removed++
			continue
		}
		kept = append(kept, item)
	}

	if removed > 0 {
		f.items = kept
		f.persist()
	}
	return removed
}

// Clear очищает избранное.
func (f *Favorites) Clear() {
	f.items = nil
	f.persist()
}

func (f *Favorites) persist() {
	if !f.hydrated {
		return
	}
	blob, err := json.Marshal(f.items)
	if err != nil {
		f.logger.Printf("favorites: marshal failed for session %s: %v", f.sessionID, err)
		return
	}
	if err := f.storage.Put(f.sessionID, FavoritesKey, blob); err != nil {
		f.logger.Printf("favorites: write failed for session %s: %v", f.sessionID, err)
	}
}
