// internal/storage/outbox.go
package storage

import (
	"go-dodge-tejecks/internal/profile"
	"sync/atomic"
)

// Outbox: очередь записей на сохранение между игровым циклом и Syncer.
// Игровой цикл никогда не ждёт: при переполнении выбрасывается самая
// старая запись, ведь важна только последняя.
type Outbox struct {
	ch      chan profile.Record
	dropped atomic.Int64
}

func NewOutbox(size int) *Outbox {
	return &Outbox{ch: make(chan profile.Record, max(1, size))}
}

// Enqueue кладёт копию записи. Не блокируется.
func (o *Outbox) Enqueue(r profile.Record) {
	r = r.Clone()
	for {
		select {
		case o.ch <- r:
			return
		default:
		}
		select {
		case <-o.ch:
			o.dropped.Add(1)
		default:
		}
	}
}

// C: канал для потребителя.
func (o *Outbox) C() <-chan profile.Record { return o.ch }

// Len: сколько записей ждёт отправки.
func (o *Outbox) Len() int { return len(o.ch) }

// Dropped: сколько записей было вытеснено более свежими.
func (o *Outbox) Dropped() int64 { return o.dropped.Load() }
