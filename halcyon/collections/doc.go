// Package collections provides nil-tolerant helpers for ordered sequences and
// set/bag containers.
//
// PushFront, PopFirst, PeekFirst and AddIfPossible never panic and never return
// errors. An absent container or value turns the call into a no-op (or an absent
// result), and a container that refuses an insertion is silently left unchanged.
//
// The helpers add no synchronization: calling a mutating helper on a container
// shared between goroutines is exactly as unsafe as calling the container's own
// method.
package collections
