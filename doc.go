// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hintq provides a bounded, lock-free-leaning FIFO ring queue for
// non-zero machine-word payloads.
//
// hintq is a building block for worker-pool task handoff, inter-goroutine
// pipelines, and message buses where a lock acquisition is unacceptable on
// the hot path. It is not a general-purpose channel replacement: values
// must be non-zero uintptr-sized words (encoded pointers or hand-rolled
// handles), there is no blocking or notification, and the queue never
// grows past its construction-time capacity.
//
// # Core algorithm
//
// The queue is a fixed ring of cache-line padded cells, each either EMPTY
// (0) or OCCUPIED (any non-zero word). Two monotonic counters, Head and
// Tail, hand out ring positions to producers and consumers via
// fetch-add; the actual state transition on a cell is always a
// compare-and-swap, so counters are only a position hint and correctness
// flows entirely through per-cell CAS.
//
// FIFO order holds per cell, not globally: two producers that claim
// different cells may publish in either order, and consumers see values
// in the order their cells become visible.
//
// Every call carries a per-caller [EnqueueCtx] or [DequeueCtx]. Each
// context remembers the one cell index ("hint") the caller last failed
// to use. A call first retries its hint cell — bounded by MaxTry — before
// claiming a fresh position off Head/Tail, so a caller that previously
// lost a race does not keep burning counter positions into cells it can
// no longer reach. This keeps every call's cost at O(MaxTry) CAS attempts
// regardless of what other callers are doing.
//
// A context is created empty and is single-owner: one goroutine, one
// queue, one role (enqueue or dequeue). Sharing a context across
// goroutines or using it against the wrong queue is a misuse that can
// only produce spurious [ErrWouldBlock] returns, never memory unsafety,
// because every cell mutation is CAS-guarded.
//
// # Quick start
//
//	q := hintq.New(1024)
//	var enq hintq.EnqueueCtx
//	var deq hintq.DequeueCtx
//
//	if err := q.TryEnqueue(&enq, 0x42); err != nil {
//	    // queue full — backoff, or drop, or escalate
//	}
//
//	v, err := q.TryDequeue(&deq)
//	if err != nil {
//	    // queue empty
//	}
//
// # What this package deliberately omits
//
// hintq stores raw non-zero uintptr words, not owning handles. Converting
// an owning value (a `*T`, a boxed value, an arbitrary payload) to and
// from that word, and caching one (EnqueueCtx, DequeueCtx) pair per
// (queue, goroutine) so callers do not thread contexts explicitly, are
// both usability layers that belong above this package, not inside it.
package hintq
