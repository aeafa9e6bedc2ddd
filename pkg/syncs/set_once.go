package syncs

import "sync/atomic"

// SetOnce is a write-once cell: it transitions exactly once from unset to
// set, and is immutable afterward. It exists to break construction-order
// cycles where an object must be created before the value it will eventually
// hold exists.
//
// Get is safe for concurrent use at any time. The owning system must ensure
// the single Set happens before any read that requires the value, typically
// by completing it during an initialization phase. Create instances with
// [NewSetOnce], or use the zero value directly.
type SetOnce[T any] struct {
	v atomic.Pointer[T]
}

// NewSetOnce creates a new, unset [SetOnce].
func NewSetOnce[T any]() *SetOnce[T] {
	return &SetOnce[T]{}
}

// Set stores the value. It panics if the cell has already been set; a second
// Set is always a programming error.
func (c *SetOnce[T]) Set(v T) {
	if !c.v.CompareAndSwap(nil, &v) {
		panic("syncs: SetOnce value already set")
	}
}

// Get returns the stored value and whether it has been set.
func (c *SetOnce[T]) Get() (T, bool) {
	p := c.v.Load()
	if p == nil {
		var zero T

		return zero, false
	}

	return *p, true
}

// IsSet reports whether the cell has been set.
func (c *SetOnce[T]) IsSet() bool {
	return c.v.Load() != nil
}
