// Package observe provides a single-threaded subscriber set used by the
// view-models and the host lifecycle hub.
package observe

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cashlyze/cashlyze/internal/logging"
)

// Observer receives values pushed by a Subject.
type Observer[T any] interface {
	OnChange(T)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc[T any] func(T)

func (f ObserverFunc[T]) OnChange(v T) { f(v) }

// Subject is an unordered set of observers keyed by subscription handle.
// It is not safe for concurrent use; all calls happen on the UI loop.
type Subject[T any] struct {
	subs map[uuid.UUID]Observer[T]
	log  *logging.Logger
}

// NewSubject returns an empty subject. log may be nil.
func NewSubject[T any](log *logging.Logger) *Subject[T] {
	if log == nil {
		log = logging.Discard()
	}
	return &Subject[T]{subs: make(map[uuid.UUID]Observer[T]), log: log}
}

// Subscribe registers o and returns a function removing exactly this
// registration. Calling it more than once does nothing.
func (s *Subject[T]) Subscribe(o Observer[T]) (unsubscribe func()) {
	if o == nil {
		return func() {}
	}
	id := uuid.New()
	s.subs[id] = o
	return func() { delete(s.subs, id) }
}

// Notify delivers v to every current observer. Map iteration gives no
// delivery order. A panicking observer is logged and skipped so the rest
// still receive v.
func (s *Subject[T]) Notify(v T) {
	// snapshot handles so observers may subscribe or unsubscribe during delivery
	ids := make([]uuid.UUID, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	for _, id := range ids {
		o, ok := s.subs[id]
		if !ok {
			continue
		}
		s.deliver(o, v)
	}
}

// Deliver pushes v to a single observer with the same panic isolation as Notify.
func (s *Subject[T]) Deliver(o Observer[T], v T) {
	s.deliver(o, v)
}

func (s *Subject[T]) deliver(o Observer[T], v T) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("observer panicked", "panic", fmt.Sprint(r))
		}
	}()
	o.OnChange(v)
}

// Len reports the number of registered observers.
func (s *Subject[T]) Len() int {
	return len(s.subs)
}
