package priority

import "fmt"

// Validate checks the link structure and ordering of q.
func Validate[T any](q *Queue[T]) error {
	if (q.head == nil) != (q.tail == nil) {
		return fmt.Errorf("head %p and tail %p disagree on emptiness", q.head, q.tail)
	}
	if (q.head == nil) != (q.length == 0) {
		return fmt.Errorf("length %d with head %p", q.length, q.head)
	}
	if q.length == 1 && q.head != q.tail {
		return fmt.Errorf("single entry queue has head != tail")
	}

	n := 0
	var prev *entry[T]
	for e := q.head; e != nil; e = e.next {
		if e.prev != prev {
			return fmt.Errorf("entry %d has a broken prev link", n)
		}
		if prev != nil && q.cmp(prev.data, e.data) > 0 {
			return fmt.Errorf("entry %d sorts before its predecessor", n)
		}
		prev = e
		n++
	}
	if prev != q.tail {
		return fmt.Errorf("last reachable entry is not the tail")
	}
	if n != q.length {
		return fmt.Errorf("walked %d entries, length is %d", n, q.length)
	}
	return nil
}
