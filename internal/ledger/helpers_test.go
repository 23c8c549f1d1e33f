package ledger

import (
	"fmt"
	"time"
)

// recordingNotifier накапливает уведомления для проверок в тестах.
type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) {
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(message string) {
	n.errors = append(n.errors, message)
}

// sequentialIDs возвращает генератор предсказуемых идентификаторов.
func sequentialIDs() func() string {
	counter := 0
	return func() string {
		counter++
		return fmt.Sprintf("id-%d", counter)
	}
}

// fixedNow возвращает часы, остановленные на заданном моменте.
func fixedNow(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}
