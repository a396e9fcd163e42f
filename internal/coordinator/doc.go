// Package coordinator implements the concurrent controller described in
// spec section 4.4: a single mutation lock serializing every Entry's reads
// and writes across all user types, plus the waiter bookkeeping behind
// blocking Read/Take.
//
// Waiters are delivered to directly rather than woken via a broadcast
// condition variable and re-scanned: every Write (and every Remove that
// frees up an Entry slot is not itself a wake event, per spec, since only
// writes admit new matches) walks the pending waiter list for its type in
// FIFO registration order and, for each, re-evaluates the predicate against
// the Entry's current contents under the same lock the write just took. A
// waiter that now matches is completed immediately (handed its value over a
// buffered, per-waiter channel) and removed from the list; everyone else
// stays registered. This collapses the spec's registered->woken->completed
// transitions into a single critical section instead of a separate
// wake/recheck round trip, which is simpler and still satisfies P7/P8: no
// waiter is ever skipped by a write that could have satisfied it, and the
// earliest-registered matching waiter is always serviced first.
package coordinator
