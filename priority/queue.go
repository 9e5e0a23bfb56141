package priority

import "unsafe"

// entry represents a linked entry in the queue.
type entry[T any] struct {
	data T
	prev *entry[T]
	next *entry[T]
}

// Queue implements a priority queue using a sorted doubly linked list.
// The zero value is not usable; create queues with New or Init.
type Queue[T any] struct {
	head   *entry[T] // lowest priority value
	tail   *entry[T] // highest priority value
	length int

	cmp       func(a, b T) int // negative if a sorts before b
	cleanup   func(T)
	alloc     Allocator
	unchecked bool // safe mode disabled
	observer  Observer
}

// New allocates a queue ordered by cmp. cmp must return a negative number when a
// sorts before b, zero when they are equal and a positive number otherwise.
func New[T any](cmp func(a, b T) int, opts ...Option[T]) (*Queue[T], error) {
	return Init(nil, cmp, opts...)
}

// Init initializes the queue stored at q. If q is nil a new queue is allocated
// from the configured allocator. Any entries already held by q are dropped
// without cleanup and their storage is returned to q's previous allocator.
func Init[T any](q *Queue[T], cmp func(a, b T) int, opts ...Option[T]) (*Queue[T], error) {
	if cmp == nil {
		return nil, ErrInvalidConfiguration
	}

	o := defaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.allocator == nil {
		o.allocator = HeapAllocator{}
	}

	if q == nil {
		if !o.allocator.Allocate(QueueSize[T]()) {
			if o.observer != nil {
				o.observer.Failed("new", ErrAllocation)
			}
			return nil, ErrAllocation
		}
		q = new(Queue[T])
	} else {
		q.discard()
	}

	*q = Queue[T]{
		cmp:       cmp,
		cleanup:   o.cleanup,
		alloc:     o.allocator,
		unchecked: !o.safeMode,
		observer:  o.observer,
	}
	return q, nil
}

// Len returns the number of items in the queue.
func (q *Queue[T]) Len() int {
	if q == nil {
		return 0
	}
	return q.length
}

// Insert adds v behind every entry that does not compare greater than it.
func (q *Queue[T]) Insert(v T) error {
	if err := q.check(); err != nil {
		return q.fail("insert", err)
	}
	if !q.alloc.Allocate(EntrySize[T]()) {
		return q.fail("insert", ErrAllocation)
	}

	e := &entry[T]{data: v}

	position := 0
	for cur := q.head; cur != nil; cur = cur.next {
		if q.cmp(cur.data, v) > 0 {
			q.insertBefore(e, cur)
			q.inserted(position)
			return nil
		}
		position++
	}

	q.pushBack(e)
	q.inserted(position)
	return nil
}

// Remove removes and returns the lowest priority value. The caller owns the
// returned value; the cleanup function is not called.
func (q *Queue[T]) Remove() (T, error) {
	var zero T
	if err := q.checkNonEmpty(); err != nil {
		return zero, q.fail("remove", err)
	}

	data := q.unlinkHead()

	if q.observer != nil {
		q.observer.Removed(q.length)
	}
	return data, nil
}

// Peek returns the lowest priority value without removing it.
func (q *Queue[T]) Peek() (T, error) {
	var zero T
	if err := q.checkNonEmpty(); err != nil {
		return zero, q.fail("peek", err)
	}
	return q.head.data, nil
}

// Clear discards every entry, passing each value to the cleanup function if
// one was configured. Clearing an empty queue succeeds.
func (q *Queue[T]) Clear() error {
	if err := q.check(); err != nil {
		return q.fail("clear", err)
	}

	n := 0
	for q.head != nil {
		data := q.unlinkHead()
		n++
		if q.cleanup != nil {
			q.cleanup(data)
		}
	}

	if q.observer != nil {
		q.observer.Cleared(n)
	}
	return nil
}

// SizeInBytes returns the bytes used by the queue and its entries. dataSize is
// the number of bytes each value references outside its entry; zero leaves it
// out of the total.
func (q *Queue[T]) SizeInBytes(dataSize uintptr) uintptr {
	if q == nil {
		return 0
	}
	size := QueueSize[T]()
	if q.length == 0 {
		return size
	}
	return size + uintptr(q.length)*(EntrySize[T]()+dataSize)
}

// insertBefore links e directly in front of at.
func (q *Queue[T]) insertBefore(e, at *entry[T]) {
	e.next = at
	e.prev = at.prev
	if at.prev != nil {
		at.prev.next = e
	} else {
		q.head = e
	}
	at.prev = e
	q.length++
}

// pushBack links e after the current tail.
func (q *Queue[T]) pushBack(e *entry[T]) {
	e.prev = q.tail
	if q.tail != nil {
		q.tail.next = e
	} else {
		q.head = e
	}
	q.tail = e
	q.length++
}

// unlinkHead detaches the head entry, releases its storage and returns its
// value. The queue is consistent again before the value is handed out.
func (q *Queue[T]) unlinkHead() T {
	e := q.head
	q.head = e.next
	if q.head == nil {
		q.tail = nil
	} else {
		q.head.prev = nil
	}
	q.length--

	data := e.data
	q.release(e)
	return data
}

// discard drops every entry without cleanup, returning storage to the
// allocator that granted it.
func (q *Queue[T]) discard() {
	if q.alloc == nil {
		return
	}
	for q.head != nil {
		q.unlinkHead()
	}
}

// release unlinks e and returns its storage to the allocator.
func (q *Queue[T]) release(e *entry[T]) {
	var zero T
	e.data, e.prev, e.next = zero, nil, nil
	q.alloc.Deallocate(EntrySize[T]())
}

// check validates the queue handle. A nil receiver is always reported since it
// carries no configuration.
func (q *Queue[T]) check() error {
	if q == nil {
		return ErrNilQueue
	}
	if !q.unchecked && q.cmp == nil {
		return ErrNilQueue
	}
	return nil
}

func (q *Queue[T]) checkNonEmpty() error {
	if err := q.check(); err != nil {
		return err
	}
	if !q.unchecked && q.head == nil {
		return ErrEmpty
	}
	return nil
}

func (q *Queue[T]) inserted(position int) {
	if q.observer != nil {
		q.observer.Inserted(position, q.length)
	}
}

func (q *Queue[T]) fail(op string, err error) error {
	if q != nil && q.observer != nil {
		q.observer.Failed(op, err)
	}
	return err
}

// QueueSize returns the storage size of a Queue[T] header.
func QueueSize[T any]() uintptr {
	var q Queue[T]
	return unsafe.Sizeof(q)
}

// EntrySize returns the storage size of one queue entry holding a T.
func EntrySize[T any]() uintptr {
	var e entry[T]
	return unsafe.Sizeof(e)
}
