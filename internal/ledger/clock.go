package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Clock supplies timestamps for ledger events. Implementations must be safe
// for concurrent use and must never hand out a time earlier than one already
// handed out.
type Clock interface {
	Now() time.Time
}

type monotonicClock struct {
	mu   sync.Mutex
	last time.Time
}

func NewClock() Clock {
	return &monotonicClock{}
}

func (c *monotonicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if !now.After(c.last) {
		now = c.last.Add(time.Nanosecond)
	}
	c.last = now
	return now
}

func newTransactionID() string {
	return fmt.Sprintf("txn_%s", uuid.New().String())
}

func newAlertID() string {
	return fmt.Sprintf("alert_%s", uuid.New().String())
}
