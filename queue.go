// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hintq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"

	"code.hybscloud.com/hintq/internal/cpu"
)

// DefaultMaxTry is the default bounded-retry budget for a single hint or
// claim probe. 128 is a reasonable value under normal OS scheduling; set
// it to 1 via [WithMaxTry] to keep state spaces tractable for model
// checkers and other exhaustive-schedule test harnesses.
const DefaultMaxTry = 128

// cell is one ring slot: zero means EMPTY, any non-zero value is an
// OCCUPIED payload. Padded to its own cache line so adjacent slots never
// false-share under concurrent CAS traffic.
type cell struct {
	value atomix.Uintptr
	_     cpu.PadShort
}

// Queue is a bounded, multi-producer/multi-consumer FIFO ring queue of
// non-zero uintptr payloads.
//
// Queue provides only non-blocking "try" operations: [Queue.TryEnqueue]
// and [Queue.TryDequeue] each complete in a bounded number of atomic
// operations and return [ErrWouldBlock] rather than waiting. FIFO order
// holds per cell, not globally across producers — see the package doc.
type Queue struct {
	_        cpu.Pad
	tail     atomix.Uint64 // producer counter
	_        cpu.Pad
	head     atomix.Uint64 // consumer counter
	_        cpu.Pad
	cells    []cell
	capacity uint64
	maxTry   int
}

// New creates a queue with the given capacity, which must be >= 1.
//
// Unlike the teacher's FAA-based MPMC (which needs 2n physical slots for
// SCQ-style ABA safety), this ring is CAS-guarded per cell and needs
// exactly n slots; capacity is not rounded to a power of 2, matching
// spec.md's "N >= 1, addressed by counter mod N" data model.
func New(capacity int, opts ...Option) *Queue {
	if capacity < 1 {
		panic("hintq: capacity must be >= 1")
	}
	q := &Queue{
		cells:    make([]cell, capacity),
		capacity: uint64(capacity),
		maxTry:   DefaultMaxTry,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Cap returns the queue's fixed capacity N.
func (q *Queue) Cap() int {
	return int(q.capacity)
}

// Len returns an approximate occupancy count, computed from relaxed
// loads of Head and Tail, clamped to [0, Cap()]. It is not linearizable:
// under concurrent traffic it may briefly read stale values. Use it for
// diagnostics and backoff heuristics only, never for correctness
// decisions.
func (q *Queue) Len() int {
	tail := q.tail.LoadRelaxed()
	head := q.head.LoadRelaxed()
	if tail <= head {
		return 0
	}
	n := tail - head
	if n > q.capacity {
		n = q.capacity
	}
	return int(n)
}

// IsEmpty reports whether Len() == 0. Advisory, see [Queue.Len].
func (q *Queue) IsEmpty() bool {
	return q.Len() == 0
}

// IsFull reports whether Len() == Cap(). Advisory: under contention this
// may read false even when every cell is momentarily OCCUPIED, and vice
// versa — see [Queue.Len].
func (q *Queue) IsFull() bool {
	return q.Len() == int(q.capacity)
}

// TryEnqueue publishes v into the queue using ctx's cached hint, falling
// back to claiming a fresh cell off the tail counter.
//
// v must be non-zero; a zero payload is a programmer error (zero is the
// EMPTY sentinel) and TryEnqueue panics rather than silently corrupting
// the ring.
//
// Returns nil on success (v has been published). Returns [ErrWouldBlock]
// if every probed cell was OCCUPIED within ctx's retry budget; v is then
// left untouched and the caller retains it.
func (q *Queue) TryEnqueue(ctx *EnqueueCtx, v uintptr) error {
	if v == 0 {
		panic("hintq: payload must be non-zero")
	}

	if idx, ok := hintLoad(&ctx.hint); ok && idx < len(q.cells) {
		if q.casEnqueue(&q.cells[idx].value, v) {
			hintClear(&ctx.hint)
			return nil
		}
	}

	idx := int(q.tail.AddAcqRel(1)-1) % int(q.capacity)
	if q.casEnqueue(&q.cells[idx].value, v) {
		return nil
	}
	hintStore(&ctx.hint, idx)
	return ErrWouldBlock
}

// casEnqueue repeatedly attempts EMPTY -> v on cell, bounded by maxTry.
func (q *Queue) casEnqueue(slot *atomix.Uintptr, v uintptr) bool {
	sw := spin.Wait{}
	curr := slot.LoadAcquire()
	for try := 0; try < q.maxTry; try++ {
		if curr == 0 {
			if slot.CompareAndSwapAcqRel(0, v) {
				return true
			}
			curr = slot.LoadAcquire()
			continue
		}
		sw.Once()
		curr = slot.LoadAcquire()
	}
	return false
}

// TryDequeue removes and returns one payload, using ctx's cached hint
// before claiming a fresh cell off the head counter.
//
// Returns (v, nil) on success. Returns (0, [ErrWouldBlock]) if every
// probed cell was EMPTY within ctx's retry budget.
func (q *Queue) TryDequeue(ctx *DequeueCtx) (uintptr, error) {
	if idx, ok := hintLoad(&ctx.hint); ok && idx < len(q.cells) {
		if v, ok := q.casDequeue(&q.cells[idx].value); ok {
			hintClear(&ctx.hint)
			return v, nil
		}
	}

	idx := int(q.head.AddAcqRel(1)-1) % int(q.capacity)
	if v, ok := q.casDequeue(&q.cells[idx].value); ok {
		return v, nil
	}
	hintStore(&ctx.hint, idx)
	return 0, ErrWouldBlock
}

// casDequeue repeatedly attempts v -> EMPTY on cell, bounded by maxTry.
func (q *Queue) casDequeue(slot *atomix.Uintptr) (uintptr, bool) {
	sw := spin.Wait{}
	curr := slot.LoadAcquire()
	for try := 0; try < q.maxTry; try++ {
		if curr != 0 {
			if slot.CompareAndSwapAcqRel(curr, 0) {
				return curr, true
			}
			curr = slot.LoadAcquire()
			continue
		}
		sw.Once()
		curr = slot.LoadAcquire()
	}
	return 0, false
}

// Close drains every remaining payload by repeated TryDequeue, then
// sweeps the ring once for payloads in cells that loop did not reach,
// invoking release once per drained word so an adapter layer built on
// top of Queue can reconstruct and dispose of owning handles. Close is
// meant to be called by the queue's sole owner once no producer can
// enqueue further; it does not itself synchronize with producers.
//
// Calling Close on an already-drained queue is a no-op: release is
// simply never invoked.
func (q *Queue) Close(release func(uintptr)) {
	var ctx DequeueCtx
	for {
		v, err := q.TryDequeue(&ctx)
		if err != nil {
			break
		}
		if release != nil {
			release(v)
		}
	}
	// TryDequeue stops at the first EMPTY cell it claims; an OCCUPIED cell
	// further along the ring is taken here.
	for i := range q.cells {
		slot := &q.cells[i].value
		if v := slot.LoadAcquire(); v != 0 && slot.CompareAndSwapAcqRel(v, 0) && release != nil {
			release(v)
		}
	}
}
