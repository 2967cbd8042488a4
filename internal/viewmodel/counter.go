// Package viewmodel holds UI-agnostic state holders and the bindings that
// project them into screen-local state.
package viewmodel

import (
	"github.com/cashlyze/cashlyze/internal/logging"
	"github.com/cashlyze/cashlyze/internal/observe"
)

// CounterViewModel holds a single integer and pushes every change to its
// subscribers. Mutators always notify, even when the value is unchanged.
type CounterViewModel struct {
	count int
	subs  *observe.Subject[int]
}

// NewCounterViewModel returns a model starting at initial. log may be nil.
func NewCounterViewModel(initial int, log *logging.Logger) *CounterViewModel {
	return &CounterViewModel{
		count: initial,
		subs:  observe.NewSubject[int](log.WithComponent(logging.ComponentViewModel)),
	}
}

// Value returns the current count.
func (vm *CounterViewModel) Value() int {
	return vm.count
}

func (vm *CounterViewModel) Increment() {
	vm.count++
	vm.notify()
}

// Decrement has no floor; the count may go negative.
func (vm *CounterViewModel) Decrement() {
	vm.count--
	vm.notify()
}

func (vm *CounterViewModel) Reset(value int) {
	vm.count = value
	vm.notify()
}

// ResetToZero is Reset with the default value.
func (vm *CounterViewModel) ResetToZero() {
	vm.Reset(0)
}

// Subscribe registers fn, calls it right away with the current value and
// returns an idempotent unsubscribe.
func (vm *CounterViewModel) Subscribe(fn func(int)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	o := observe.ObserverFunc[int](fn)
	unsubscribe = vm.subs.Subscribe(o)
	vm.subs.Deliver(o, vm.count)
	return unsubscribe
}

// Subscribers reports how many callbacks are registered.
func (vm *CounterViewModel) Subscribers() int {
	return vm.subs.Len()
}

func (vm *CounterViewModel) notify() {
	vm.subs.Notify(vm.count)
}
