package text

// Observer is a one-method capability: any value that can patch itself from
// an UpdateContext in lock-step with the document, without mutating the
// text buffer or EOL index itself. Implementations should ignore fields
// irrelevant to their own state (e.g. a caret patcher ignores
// InsertedBreaks) rather than erroring on them.
type Observer interface {
	Update(ctx UpdateContext) error
}

// NoopObserver implements Observer by doing nothing. It is the zero-cost
// default for callers that have no downstream consumer to notify.
type NoopObserver struct{}

// Update implements Observer.
func (NoopObserver) Update(UpdateContext) error { return nil }

// ObserverFunc adapts a plain function to the Observer interface, so a
// caller with a single closure to run doesn't need to declare a named type
// just to satisfy the interface.
type ObserverFunc func(ctx UpdateContext) error

// Update implements Observer.
func (f ObserverFunc) Update(ctx UpdateContext) error { return f(ctx) }

// Observers fans a single UpdateContext out to every observer in the slice,
// for callers that need to notify more than one consumer (e.g. a cursor set
// and a syntax tree) from a single edit.
type Observers []Observer

// Update implements Observer, calling every member in order and returning
// the first error encountered, after all members have been notified.
func (os Observers) Update(ctx UpdateContext) error {
	var first error
	for _, o := range os {
		if err := o.Update(ctx); err != nil && first == nil {
			first = err
		}
	}
	return first
}
