package session

import (
	"sync"
	"time"
)

// Manager хранит отметки времени запрошенных необратимых действий.
// Действие выполняется только повторным запросом после истечения задержки —
// защита от случайного безвозвратного удаления.
// Manager keeps timestamps of requested irreversible actions.
// An action runs only on a repeated request after the cooldown elapses —
// a guard against accidental irreversible loss.
type Manager struct {
	mu       sync.Mutex
	armed    map[string]time.Time
	cooldown time.Duration
	now      func() time.Time
}

// NewManager создаёт менеджер с заданной задержкой подтверждения.
func NewManager(cooldown time.Duration) *Manager {
	return &Manager{
		armed:    make(map[string]time.Time),
		cooldown: cooldown,
		now:      time.Now,
	}
}

// Arm взводит действие, если оно ещё не взведено.
// Повторный вызов не сдвигает момент взведения.
func (m *Manager) Arm(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.armed[key]; !ok {
		m.armed[key] = m.now()
	}
}

// Ready сообщает, было ли действие взведено и прошла ли задержка.
func (m *Manager) Ready(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	armedAt, ok := m.armed[key]
	if !ok {
		return false
	}
	return m.now().Sub(armedAt) >= m.cooldown
}

// Remaining возвращает оставшееся время задержки для взведённого действия.
func (m *Manager) Remaining(key string) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	armedAt, ok := m.armed[key]
	if !ok {
		return m.cooldown
	}
	left := m.cooldown - m.now().Sub(armedAt)
	if left < 0 {
		return 0
	}
	return left
}

// Reset снимает взведение действия.
func (m *Manager) Reset(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.armed, key)
}
