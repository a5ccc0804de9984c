// Package handle exposes the list behind opaque integer handles, the
// contract a foreign-function shim binds to. Values cross the boundary as
// untyped pointers the core never dereferences; their pointees belong to
// the caller unless a destructor callback was registered at construction.
package handle

import (
	"runtime"
	"sync"
	"unsafe"

	"github.com/pkg/errors"
	atomic "go.uber.org/atomic"

	lflist "github.com/gsingh-ds/go-lock-free-list"
)

// Status is the result code of every handle operation. Zero is success;
// non-zero codes report misuse and leave all state unchanged.
type Status int32

const (
	StatusOK         Status = 0
	StatusNullHandle Status = 1
	StatusDestroyed  Status = 2
)

var (
	ErrNullHandle = errors.New("null handle")
	ErrDestroyed  = errors.New("handle already destroyed")
)

// Err returns the error value for a misuse status, nil for StatusOK.
func (s Status) Err() error {
	switch s {
	case StatusOK:
		return nil
	case StatusNullHandle:
		return ErrNullHandle
	case StatusDestroyed:
		return ErrDestroyed
	}
	return errors.Errorf("unknown status %d", int32(s))
}

// Handle names a list across the boundary. IterHandle names an iterator.
// Both are opaque; zero is the null handle.
type Handle uintptr

type IterHandle uintptr

// boxed wraps a stored pointer so a destructor can be attached to the
// lifetime of the node that owns it. The finalizer fires when the chain
// holding the box is collected, which by construction is after the list
// and every iterator that captured the box have let go.
type boxed struct {
	p unsafe.Pointer
}

type listEntry struct {
	list *lflist.List[*boxed]
	dtor func(unsafe.Pointer)
}

type iterEntry struct {
	iter *lflist.Iterator[*boxed]
}

var (
	mu     sync.Mutex
	nextID atomic.Uintptr
	lists  = map[Handle]*listEntry{}
	iters  = map[IterHandle]*iterEntry{}
)

// New creates a list and returns its handle.
func New() Handle {
	return NewWithDestructor(nil)
}

// NewWithDestructor creates a list whose stored pointers are passed to
// dtor, each exactly once, when the node owning them is destroyed. A nil
// dtor means the caller keeps full ownership of every pointee.
func NewWithDestructor(dtor func(unsafe.Pointer)) Handle {
	h := Handle(nextID.Inc())
	mu.Lock()
	lists[h] = &listEntry{list: lflist.New[*boxed](), dtor: dtor}
	mu.Unlock()
	return h
}

func lookup(h Handle) (*listEntry, Status) {
	if h == 0 {
		return nil, StatusNullHandle
	}
	mu.Lock()
	e, ok := lists[h]
	mu.Unlock()
	if !ok {
		return nil, StatusDestroyed
	}
	return e, StatusOK
}

// Destroy releases the handle. The list itself is collected once every
// iterator over it is destroyed too. A second Destroy of the same handle
// performs no action and reports StatusDestroyed.
func Destroy(h Handle) Status {
	if h == 0 {
		return StatusNullHandle
	}
	mu.Lock()
	_, ok := lists[h]
	if ok {
		delete(lists, h)
	}
	mu.Unlock()
	if !ok {
		return StatusDestroyed
	}
	return StatusOK
}

// Len reports the element count of the list behind h.
func Len(h Handle) (uint64, Status) {
	e, st := lookup(h)
	if st != StatusOK {
		return 0, st
	}
	return e.list.Len(), StatusOK
}

// Append stores p at the end of the list. p is never dereferenced.
func Append(h Handle, p unsafe.Pointer) Status {
	e, st := lookup(h)
	if st != StatusOK {
		return st
	}
	b := &boxed{p: p}
	if e.dtor != nil {
		dtor := e.dtor
		runtime.SetFinalizer(b, func(b *boxed) { dtor(b.p) })
	}
	e.list.Append(b)
	return StatusOK
}

// Clear detaches the list's contents. Live iterators keep theirs.
func Clear(h Handle) Status {
	e, st := lookup(h)
	if st != StatusOK {
		return st
	}
	e.list.Clear()
	return StatusOK
}

// Iter snapshots the list and returns a handle to the iterator.
func Iter(h Handle) (IterHandle, Status) {
	e, st := lookup(h)
	if st != StatusOK {
		return 0, st
	}
	ih := IterHandle(nextID.Inc())
	mu.Lock()
	iters[ih] = &iterEntry{iter: e.list.Iter()}
	mu.Unlock()
	return ih, StatusOK
}

func lookupIter(ih IterHandle) (*iterEntry, Status) {
	if ih == 0 {
		return nil, StatusNullHandle
	}
	mu.Lock()
	e, ok := iters[ih]
	mu.Unlock()
	if !ok {
		return nil, StatusDestroyed
	}
	return e, StatusOK
}

// IterNext yields the next stored pointer. A nil pointer with StatusOK
// signals end of iteration.
func IterNext(ih IterHandle) (unsafe.Pointer, Status) {
	e, st := lookupIter(ih)
	if st != StatusOK {
		return nil, st
	}
	b, ok := e.iter.Next()
	if !ok {
		return nil, StatusOK
	}
	return b.p, StatusOK
}

// IterLen reports the snapshot size of the iterator behind ih.
func IterLen(ih IterHandle) (uint64, Status) {
	e, st := lookupIter(ih)
	if st != StatusOK {
		return 0, st
	}
	return e.iter.Len(), StatusOK
}

// IterIndex reports how many elements the iterator has yielded.
func IterIndex(ih IterHandle) (uint64, Status) {
	e, st := lookupIter(ih)
	if st != StatusOK {
		return 0, st
	}
	return e.iter.Index(), StatusOK
}

// IterDestroy releases the iterator handle and with it the iterator's hold
// on its captured chain.
func IterDestroy(ih IterHandle) Status {
	if ih == 0 {
		return StatusNullHandle
	}
	mu.Lock()
	_, ok := iters[ih]
	if ok {
		delete(iters, ih)
	}
	mu.Unlock()
	if !ok {
		return StatusDestroyed
	}
	return StatusOK
}
