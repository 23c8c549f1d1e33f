// Файл: internal/store/postgres.go
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// PostgresStore хранит каждую коллекцию одной JSONB-строкой в таблице kv_store.
// Любая мутация перезаписывает значение ключа целиком (последняя запись побеждает).
// PostgresStore keeps each collection as a single JSONB row in kv_store.
// Every mutation overwrites the key's value wholesale (last write wins).
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore открывает соединение с базой данных и создаёт таблицу
// kv_store, если её ещё нет.
func NewPostgresStore(databaseURL string) (*PostgresStore, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL не установлена")
	}

	parsedURL, err := url.Parse(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга DATABASE_URL: %v", err)
	}
	// Пример: query.Set("sslmode", "require") при необходимости
	finalURL := parsedURL.String()

	db, err := sql.Open("postgres", finalURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к базе данных: %v", err)
	}

	// Трекер однопользовательский, большой пул не нужен
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ошибка проверки соединения с базой данных: %v", err)
	}
	log.Println("Успешное подключение к базе данных.")

	createTableSQL := `
        CREATE TABLE IF NOT EXISTS kv_store (
            key TEXT PRIMARY KEY,
            value JSONB NOT NULL,
            updated_at TIMESTAMP WITHOUT TIME ZONE DEFAULT NOW()
        );
    `
	if _, err := db.Exec(createTableSQL); err != nil {
		return nil, fmt.Errorf("ошибка создания таблицы kv_store: %v", err)
	}
	log.Println("Создание таблицы kv_store (если не существует) завершено.")

	return &PostgresStore{db: db}, nil
}

// Get возвращает сохранённое JSON-значение по ключу.
func (s *PostgresStore) Get(key string) (json.RawMessage, bool, error) {
	var raw []byte
	err := s.db.QueryRow(`SELECT value FROM kv_store WHERE key = $1`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		log.Printf("PostgresStore.Get: ошибка чтения ключа '%s': %v", key, err)
		return nil, false, err
	}
	return json.RawMessage(raw), true, nil
}

// Set перезаписывает значение ключа целиком.
func (s *PostgresStore) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("ошибка сериализации значения для ключа '%s': %v", key, err)
	}
	_, err = s.db.Exec(`
        INSERT INTO kv_store (key, value, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, raw)
	if err != nil {
		log.Printf("PostgresStore.Set: ошибка записи ключа '%s': %v", key, err)
		return err
	}
	return nil
}

// Remove удаляет ключ из хранилища.
func (s *PostgresStore) Remove(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv_store WHERE key = $1`, key)
	if err != nil {
		log.Printf("PostgresStore.Remove: ошибка удаления ключа '%s': %v", key, err)
		return err
	}
	return nil
}

// Close закрывает соединение с базой данных.
func (s *PostgresStore) Close() {
	if s.db != nil {
		s.db.Close()
		log.Println("Соединение с базой данных закрыто.")
	}
}
