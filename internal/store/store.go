// Файл: internal/store/store.go
package store

import (
	"encoding/json"
	"sync"
)

// Store — контракт локального key/value хранилища JSON-значений.
// Каждая запись перезаписывается целиком: читатель всегда видит последнюю
// полную запись, транзакций между ключами нет.
// Store is the contract of a local key/value storage of JSON values.
// Every write overwrites the whole entry: readers always see the last
// complete write, there are no cross-key transactions.
type Store interface {
	// Get возвращает значение по ключу. Второй результат false, если ключа нет.
	Get(key string) (json.RawMessage, bool, error)
	// Set сериализует значение в JSON и перезаписывает его под ключом.
	Set(key string, value any) error
	// Remove удаляет ключ. Отсутствующий ключ не является ошибкой.
	Remove(key string) error
}

// MemoryStore — хранилище в памяти. Используется в тестах и при запуске
// без DATABASE_URL; данные не переживают перезапуск процесса.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

// NewMemoryStore создаёт пустое хранилище в памяти.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]json.RawMessage)}
}

func (m *MemoryStore) Get(key string) (json.RawMessage, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	// Копия, чтобы вызывающий не мог изменить внутренний буфер
	out := make(json.RawMessage, len(raw))
	copy(out, raw)
	return out, true, nil
}

func (m *MemoryStore) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = raw
	return nil
}

func (m *MemoryStore) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
