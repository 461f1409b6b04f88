// Package reactive provides thread-safe reactive value containers.
//
// A Node holds a mutable value; writing to it synchronously pushes the new
// value to every derived node and observer registered on it, so the whole
// dependency graph is consistent again before the write returns. There is
// no scheduler and no dirty state: propagation is eager, depth-first, and
// runs to completion inside the call that started it.
//
// # Core Types
//
// Node[T] is a reactive value container. The *Node[T] pointer is the
// handle; copying the pointer shares the same underlying cell:
//
//	count := reactive.New(0)
//	value := count.Get()  // Snapshot read
//	count.Set(5)          // Write (notifies subscribers)
//	count.Update(func(n int) int { return n + 1 })
//
// Derive creates a node whose value is kept eagerly in sync with its
// source:
//
//	doubled := reactive.Derive(count, func(n int) int { return n * 2 })
//	doubled.Get()  // Always count.Get() * 2, never stale
//
// Merge combines nodes into a node holding their latest values as a
// tuple; it composes with Derive for functions of several sources:
//
//	sum := reactive.Derive(reactive.Merge(a, b), func(p reactive.Pair[int, int]) int {
//	    return p.First + p.Second
//	})
//
// Observe registers a side-effect callback that fires on every subsequent
// write with the committed value:
//
//	count.Observe(func(n int) { fmt.Println("count is", n) })
//
// # Thread Safety
//
// Every node is safe for concurrent use. A single mutex per cell makes
// Get, Set, Update, UpdateInPlace, and Observe on the same node
// linearizable; concurrent writers are serialized into some total order.
// Observers run while that mutex is held, so they see writes in the order
// they were committed — but for the same reason an observer must not call
// back into the node it is observing.
//
// # Resource Lifetime
//
// Subscriptions are owned by the source and hold strong handles to their
// derived cells: a source keeps everything derived from it alive for as
// long as the source is alive, and there is no unsubscribe. Calling
// Derive or Observe in a loop on a long-lived node therefore grows
// without bound.
package reactive
