package lflist

import (
	atomic "go.uber.org/atomic"
)

// swapCell is a single atomic cell whose payload may be freely replaced.
// It backs the list's head and tail, which are overwritten by append and
// nulled by clear. Loads are always safe here: the garbage collector keeps
// a loaded pointer valid no matter how many swaps race with the reader, so
// no ownership hand-off is needed on the read side.
type swapCell[P any] struct {
	ptr atomic.Pointer[P]
}

func (c *swapCell[P]) load() *P {
	return c.ptr.Load()
}

// swap installs p and returns the previous payload, nil if the cell was empty.
func (c *swapCell[P]) swap(p *P) *P {
	return c.ptr.Swap(p)
}

// take empties the cell and returns the previous payload.
func (c *swapCell[P]) take() *P {
	return c.ptr.Swap(nil)
}

func (c *swapCell[P]) compareAndSwap(old, new *P) bool {
	return c.ptr.CompareAndSwap(old, new)
}

// fillOnce is an atomic cell that transitions at most once from empty to
// occupied and never back. Once filled the payload is pinned for the cell's
// lifetime, which is what makes handing out references from get safe: a
// reader that observed the fill can never observe anything else.
//
// The store half of the CAS publishes the payload's initialization to every
// reader whose load observes it, so chain traversal needs no further
// synchronization on the nodes themselves.
type fillOnce[P any] struct {
	ptr atomic.Pointer[P]
}

// tryFill installs p iff the cell is still empty. Reports whether this call
// was the one that filled it.
func (c *fillOnce[P]) tryFill(p *P) bool {
	return c.ptr.CompareAndSwap(nil, p)
}

// get returns the payload, or nil while the cell is still empty.
func (c *fillOnce[P]) get() *P {
	return c.ptr.Load()
}
