package stores

// Ключи, под которыми хранятся сериализованные коллекции сессии.
const (
	FavoritesKey   = "smart-edu-favorites"
	ViewHistoryKey = "smart-edu-view-history"
	ChatKey        = "smart-edu-chat"
)

// Storage абстрагирует хранилище JSON-блобов пользовательского состояния.
// Get возвращает (nil, nil), если значение под ключом отсутствует.
type Storage interface {
	Get(sessionID, key string) ([]byte, error)
	Put(sessionID, key string, blob []byte) error
	Delete(sessionID, key string) error
}
