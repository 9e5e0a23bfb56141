package priority

import "errors"

var (
	ErrInvalidConfiguration = errors.New("priority: comparator is required")
	ErrAllocation           = errors.New("priority: allocator refused storage")
	ErrEmpty                = errors.New("priority: queue is empty")
	ErrNilQueue             = errors.New("priority: queue is nil or not initialized")
)
