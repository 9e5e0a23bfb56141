package priority

import "sync"

// Allocator grants and reclaims storage for queues and their entries.
type Allocator interface {
	// Allocate reports whether size bytes may be used.
	Allocate(size uintptr) bool
	// Deallocate returns size bytes previously granted by Allocate.
	Deallocate(size uintptr)
}

// AllocatorFunc adapts a pair of functions to the Allocator interface.
type AllocatorFunc struct {
	AllocateFunc   func(size uintptr) bool
	DeallocateFunc func(size uintptr)
}

// Allocate calls AllocateFunc. A nil AllocateFunc always grants storage.
func (f AllocatorFunc) Allocate(size uintptr) bool {
	if f.AllocateFunc == nil {
		return true
	}
	return f.AllocateFunc(size)
}

// Deallocate calls DeallocateFunc if set.
func (f AllocatorFunc) Deallocate(size uintptr) {
	if f.DeallocateFunc != nil {
		f.DeallocateFunc(size)
	}
}

// HeapAllocator leaves storage to the Go runtime and never refuses.
type HeapAllocator struct{}

func (HeapAllocator) Allocate(uintptr) bool { return true }

func (HeapAllocator) Deallocate(uintptr) {}

// LimitAllocator grants storage up to a fixed byte budget. It is safe to share
// between queues.
type LimitAllocator struct {
	mu    sync.Mutex
	limit uintptr
	inUse uintptr
}

// NewLimitAllocator creates an allocator that grants at most limit bytes at a time.
func NewLimitAllocator(limit uintptr) *LimitAllocator {
	return &LimitAllocator{limit: limit}
}

func (a *LimitAllocator) Allocate(size uintptr) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if size > a.limit-a.inUse {
		return false
	}
	a.inUse += size
	return true
}

func (a *LimitAllocator) Deallocate(size uintptr) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if size > a.inUse {
		a.inUse = 0
		return
	}
	a.inUse -= size
}

// InUse returns the number of bytes currently granted.
func (a *LimitAllocator) InUse() uintptr {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inUse
}

// Remaining returns the number of bytes that can still be granted.
func (a *LimitAllocator) Remaining() uintptr {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.limit - a.inUse
}
