package stores

import "sync"

// MemoryStorage — хранилище блобов в памяти процесса. Используется в тестах
// и при запуске без базы данных (STORAGE=memory).
type MemoryStorage struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{blobs: make(map[string][]byte)}
}

func (s *MemoryStorage) Get(sessionID, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.blobs[sessionID+"/"+key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

func (s *MemoryStorage) Put(sessionID, key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(blob))
	copy(stored, blob)
	s.blobs[sessionID+"/"+key] = stored
	return nil
}

func (s *MemoryStorage) Delete(sessionID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, sessionID+"/"+key)
	return nil
}
