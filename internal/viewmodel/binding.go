package viewmodel

import "github.com/cashlyze/cashlyze/internal/logging"

// CounterBinding mirrors a CounterViewModel into screen-local state. A
// screen owns one binding for as long as it is mounted and must Close it
// on unmount.
type CounterBinding struct {
	vm          *CounterViewModel
	unsubscribe func()
	count       int
	renders     int
	log         *logging.Logger
}

// NewCounterBinding returns an unbound binding. log may be nil.
func NewCounterBinding(log *logging.Logger) *CounterBinding {
	return &CounterBinding{log: log}
}

// Bind builds the model on the first call and subscribes to it. Later calls
// are ignored whatever initial they pass: the model is constructed once per
// mount.
func (b *CounterBinding) Bind(initial int) {
	if b.vm != nil {
		return
	}
	b.vm = NewCounterViewModel(initial, b.log)
	b.count = b.vm.Value()
	b.unsubscribe = b.vm.Subscribe(b.set)
}

func (b *CounterBinding) set(v int) {
	b.count = v
	b.renders++
}

// Bound reports whether Bind has created a model.
func (b *CounterBinding) Bound() bool {
	return b.vm != nil
}

// Count is the locally mirrored value.
func (b *CounterBinding) Count() int {
	return b.count
}

// Renders counts notifications received, one per re-render request.
func (b *CounterBinding) Renders() int {
	return b.renders
}

func (b *CounterBinding) Increment() {
	if b.vm != nil {
		b.vm.Increment()
	}
}

func (b *CounterBinding) Decrement() {
	if b.vm != nil {
		b.vm.Decrement()
	}
}

func (b *CounterBinding) Reset(value int) {
	if b.vm != nil {
		b.vm.Reset(value)
	}
}

// Close drops the subscription. Safe to call repeatedly.
func (b *CounterBinding) Close() {
	if b.unsubscribe == nil {
		return
	}
	b.unsubscribe()
	b.unsubscribe = nil
}

// Model exposes the underlying view-model, nil before Bind.
func (b *CounterBinding) Model() *CounterViewModel {
	return b.vm
}
