package benchmark

// Observer is notified after each file finishes a phase. Calls happen on the
// goroutine running the benchmark, outside any timed interval.
type Observer interface {
	WriteDone(FileTiming)
	ReadDone(FileTiming)
}

// NopObserver ignores all notifications.
type NopObserver struct{}

// WriteDone does nothing.
func (NopObserver) WriteDone(FileTiming) {}

// ReadDone does nothing.
func (NopObserver) ReadDone(FileTiming) {}

// ObserverFuncs adapts plain functions to an Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnWrite func(FileTiming)
	OnRead  func(FileTiming)
}

// WriteDone calls OnWrite.
func (o ObserverFuncs) WriteDone(ft FileTiming) {
	if o.OnWrite != nil {
		o.OnWrite(ft)
	}
}

// ReadDone calls OnRead.
func (o ObserverFuncs) ReadDone(ft FileTiming) {
	if o.OnRead != nil {
		o.OnRead(ft)
	}
}
