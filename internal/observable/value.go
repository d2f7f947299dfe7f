// Package observable holds a current value and notifies subscribers when it
// changes. Collaborator state (connection state, room info, peers) and
// controller state are all published through it.
package observable

import (
	"sync"
)

// Observable is the read side of a Value.
type Observable[T any] interface {
	Get() T
	// Subscribe registers fn for future changes. The returned func removes it
	// and is safe to call more than once.
	Subscribe(fn func(T)) (unsubscribe func())
}

// Value is a thread-safe current value with change notification.
// Notifications run on the setter's goroutine, outside the lock, in
// subscription order.
type Value[T any] struct {
	mu    sync.Mutex
	v     T
	equal func(a, b T) bool
	subs  map[uint64]func(T)
	order []uint64
	next  uint64
}

// New returns a Value holding initial. equal, when non-nil, suppresses
// notifications for sets that do not change the value.
func New[T any](initial T, equal func(a, b T) bool) *Value[T] {
	return &Value[T]{
		v:     initial,
		equal: equal,
		subs:  make(map[uint64]func(T)),
	}
}

// NewComparable is New with == as the equality.
func NewComparable[T comparable](initial T) *Value[T] {
	return New(initial, func(a, b T) bool { return a == b })
}

func (o *Value[T]) Get() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.v
}

// Set stores v and notifies subscribers. It reports whether subscribers
// were notified.
func (o *Value[T]) Set(v T) bool {
	o.mu.Lock()
	if o.equal != nil && o.equal(o.v, v) {
		o.mu.Unlock()
		return false
	}
	o.v = v
	fns := o.snapshot()
	o.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
	return true
}

// Update applies fn to the current value under the lock and publishes the
// result.
func (o *Value[T]) Update(fn func(T) T) T {
	o.mu.Lock()
	next := fn(o.v)
	if o.equal != nil && o.equal(o.v, next) {
		o.mu.Unlock()
		return next
	}
	o.v = next
	fns := o.snapshot()
	o.mu.Unlock()

	for _, f := range fns {
		f(next)
	}
	return next
}

func (o *Value[T]) Subscribe(fn func(T)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	id := o.next
	o.next++
	o.subs[id] = fn
	o.order = append(o.order, id)

	var once sync.Once
	return func() {
		once.Do(func() { o.unsubscribe(id) })
	}
}

// Subscribers returns the number of live subscriptions.
func (o *Value[T]) Subscribers() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.subs)
}

func (o *Value[T]) unsubscribe(id uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	delete(o.subs, id)
	for i, v := range o.order {
		if v == id {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
}

func (o *Value[T]) snapshot() []func(T) {
	fns := make([]func(T), 0, len(o.order))
	for _, id := range o.order {
		fns = append(fns, o.subs[id])
	}
	return fns
}
