// Package priority implements a generic priority queue backed by a doubly linked list.
// Entries are kept sorted in ascending order by a user-provided three-way comparison
// function, so the head of the list is always the element with the lowest priority value.
//
// Inserting scans the list from the head and splices the new entry in front of the
// first entry that compares strictly greater. Elements with equal priority therefore
// leave the queue in the order they were inserted.
//
// Key features:
//   - Generic implementation supporting any element type
//   - O(n) insertion, O(1) removal and peek
//   - Stable ordering among equal priorities (FIFO)
//   - Pluggable allocator for entry storage accounting
//   - Optional cleanup callback invoked when the queue is cleared
//   - Safe mode that reports invalid use as errors instead of panicking
//
// Basic usage:
//
//	// Create a queue ordered by ascending integer value
//	pq, err := priority.New(cmp.Compare[int])
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Add items
//	_ = pq.Insert(5)
//	_ = pq.Insert(3)
//	_ = pq.Insert(8)
//
//	// Get lowest value without removing it
//	if v, err := pq.Peek(); err == nil {
//	    fmt.Println("Next:", v)
//	}
//
//	// Remove items in priority order
//	for pq.Len() > 0 {
//	    v, _ := pq.Remove()
//	    fmt.Println(v)
//	}
//
// Ownership of a value returned by Remove passes to the caller. The cleanup function
// registered with WithCleanup is only called for values discarded by Clear.
//
// A Queue is not safe for concurrent use. Callers sharing a queue between goroutines
// must guard every call with their own mutex.
package priority
