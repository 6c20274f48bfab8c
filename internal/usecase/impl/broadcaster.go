package impl

import (
	"context"
	"sync"
)

type subscription[T any] struct {
	id int
	fn func(context.Context, T)
}

// broadcaster fans a value out to subscribers in subscription order.
// Handlers run on the publishing goroutine, outside the broadcaster's lock.
type broadcaster[T any] struct {
	mu     sync.Mutex
	nextID int
	subs   []subscription[T]
}

func (b *broadcaster[T]) subscribe(fn func(context.Context, T)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription[T]{id: id, fn: fn})

	return sync.OnceFunc(func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		for i, sub := range b.subs {
			if sub.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)

				return
			}
		}
	})
}

func (b *broadcaster[T]) publish(ctx context.Context, value T) {
	b.mu.Lock()
	subs := append([]subscription[T](nil), b.subs...)
	b.mu.Unlock()

	for _, sub := range subs {
		sub.fn(ctx, value)
	}
}
