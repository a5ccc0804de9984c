// Package lflist provides a concurrent append-only list with lock-free
// snapshot iteration. Any number of goroutines may append while any number
// of others iterate; each iterator sees a stable snapshot of the elements
// present when it was created, and Clear detaches contents without
// invalidating live iterators.
package lflist

import (
	"github.com/go-kit/log"
	atomic "go.uber.org/atomic"
)

// List defines a multi-producer append-only list with lock-free snapshot
// iteration.
//
// The layout is three atomic cells: an element count, the head of the
// current chain and its tail. Nodes are singly linked through fill-once
// slots, so a link, once published, can never be retargeted. That single
// property carries most of the design:
//
// 1. Every time a producer tries to Append, it loads the current tail T and
// attempts to fill T.next with its fresh node. Only one producer can win
// that fill; the winner then publishes the new tail and bumps the count.
// A loser must re-load tail rather than walk T.next, so each failed attempt
// contends only against the current frontier and the retry loop advances
// strictly with the structure (lock-free, not wait-free).
//
// 2. Iter captures (count, head) and hands both to an Iterator. Because
// next slots are fill-once the captured chain can never be truncated or
// relinked behind the iterator's back; holding the head pins the whole
// snapshot regardless of later Appends or Clears on the list.
//
// 3. Clear detaches the chain instead of destroying it: head is swapped to
// empty, then tail, then the count is zeroed, in that order. The transient
// state (head empty, tail still set) is harmless because an Append that
// observes an empty head takes the first-element path and never consults
// the stale tail. The detached chain lives on until the last iterator
// holding it goes away.
//
// A List must not be copied after first use. It is shared across goroutines
// by pointer; the zero value is ready to use via New.
type List[T any] struct {
	length    atomic.Uint64
	_padding0 [56]byte
	head      swapCell[node[T]]
	_padding1 [56]byte
	tail      swapCell[node[T]]
	_padding2 [56]byte

	logger log.Logger
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// NewLogged returns an empty list that reports cold-path events (clear,
// iterator capture) to logger. The append path is never logged.
func NewLogged[T any](logger log.Logger) *List[T] {
	return &List[T]{logger: logger}
}

// Append inserts value at the end of the list. After it returns, Len
// reflects the new count and any later snapshot observes the new node.
// Appends from one goroutine are observed by all others in program order.
func (l *List[T]) Append(value T) {
	n := newNode(value)
	for {
		if l.head.load() == nil {
			// first element: whoever installs head owns the chain root
			if l.head.compareAndSwap(nil, n) {
				l.tail.swap(n)
				l.length.Inc()
				return
			}
			continue
		}

		t := l.tail.load()
		if t == nil {
			// a concurrent Clear ran between the head and tail loads;
			// start over and re-decide which path applies
			continue
		}
		if t.next.tryFill(n) {
			l.tail.swap(n)
			l.length.Inc()
			return
		}
		// lost the race for this tail position; reload tail, never walk next
	}
}

// Len returns the element count at some moment during the call. Concurrent
// appends and clears may move it before the caller looks at the result.
func (l *List[T]) Len() uint64 {
	return l.length.Load()
}

// Clear detaches the current contents. A snapshot taken afterwards observes
// the empty list; snapshots taken before keep their captured chain intact.
func (l *List[T]) Clear() {
	detached := l.head.take()
	l.tail.take()
	l.length.Store(0)

	if l.logger != nil {
		l.logger.Log("msg", "list cleared", "detached", detached != nil)
	}
}

// Iter returns an iterator over a snapshot of the list.
//
// The snapshot is the (count, head) pair captured by two consecutive atomic
// loads. A Clear landing between them yields a positive size with an empty
// chain; the iterator treats an empty position as exhaustion regardless of
// size, so in that rare interleaving Len overstates the number of elements
// actually yielded.
func (l *List[T]) Iter() *Iterator[T] {
	size := l.length.Load()
	head := l.head.load()

	if l.logger != nil {
		l.logger.Log("msg", "snapshot captured", "size", size)
	}
	return &Iterator[T]{current: head, size: size}
}
