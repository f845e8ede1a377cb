// Package pool provides small concurrent object pools keyed by string.
//
// A [Pool] is a LIFO stack of reusable handles. A [Group] lazily creates
// one Pool per key and guarantees at most one Pool instance per key even
// under concurrent first access.
//
// Pools never block beyond their own short critical section: Get returns
// immediately with (zero, false) when the pool is empty, and callers are
// expected to construct a fresh handle outside any pool lock. Two callers
// that miss concurrently may both construct a handle; both handles are
// valid and are absorbed back into the pool on Put. This duplication is
// bounded, intentional, and preferred over holding a lock across slow
// construction.
package pool
