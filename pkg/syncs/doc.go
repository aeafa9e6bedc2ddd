// Package syncs provides synchronization primitives.
//
// The file system core is immutable after construction, so the only
// primitive needed here is [SetOnce], the write-once cell backing late-bound
// references.
package syncs
