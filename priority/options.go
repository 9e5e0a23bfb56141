package priority

// Observer receives notifications about queue operations.
type Observer interface {
	// Inserted is called after a successful insert. position is the zero-based
	// index the new entry landed at.
	Inserted(position, length int)
	// Removed is called after the head entry was removed.
	Removed(length int)
	// Cleared is called after Clear discarded n entries.
	Cleared(n int)
	// Failed is called when op returns err.
	Failed(op string, err error)
}

// options defines all configuration options for a queue.
type options[T any] struct {
	cleanup   func(T)   // Called for each value discarded by Clear
	allocator Allocator // Grants storage for the queue and its entries
	safeMode  bool      // Report invalid use as errors
	observer  Observer  // Optional event sink
}

// Option is a function that configures the queue options.
type Option[T any] func(*options[T])

// WithCleanup sets the function called on every value discarded by Clear.
// It is never called for values returned by Remove.
func WithCleanup[T any](fn func(T)) Option[T] {
	return func(o *options[T]) {
		o.cleanup = fn
	}
}

// WithAllocator sets the allocator used for queue and entry storage.
func WithAllocator[T any](a Allocator) Option[T] {
	return func(o *options[T]) {
		o.allocator = a
	}
}

// WithSafeMode enables or disables validation of the queue state. When disabled,
// Remove and Peek on an empty or uninitialized queue panic.
func WithSafeMode[T any](enabled bool) Option[T] {
	return func(o *options[T]) {
		o.safeMode = enabled
	}
}

// WithObserver sets an observer notified about every operation.
func WithObserver[T any](obs Observer) Option[T] {
	return func(o *options[T]) {
		o.observer = obs
	}
}

// defaultOptions returns the default configuration.
func defaultOptions[T any]() options[T] {
	return options[T]{
		cleanup:   nil,
		allocator: HeapAllocator{},
		safeMode:  true,
		observer:  nil,
	}
}
