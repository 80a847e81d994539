// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hintq

import "code.hybscloud.com/atomix"

// EnqueueCtx is a per-goroutine, per-queue context for [Queue.TryEnqueue].
//
// An EnqueueCtx must be used by exactly one goroutine, against exactly one
// [Queue], for the enqueue role only. It is created zeroed and ready to
// use; there is no constructor because there is no setup beyond the zero
// value. Sharing one across goroutines, or passing it to a different
// queue than the one it was last used with, is a contract violation: it
// can only produce spurious [ErrWouldBlock] returns, never data
// corruption, because the queue never trusts the hint beyond re-probing
// the cell it names.
type EnqueueCtx struct {
	hint atomix.Int64 // 0 = no hint, else (cell index + 1)
}

// DequeueCtx is the consumer-side counterpart of [EnqueueCtx].
type DequeueCtx struct {
	hint atomix.Int64
}

// hintLoad reports the hinted cell index, and whether one is set.
func hintLoad(h *atomix.Int64) (int, bool) {
	v := h.LoadRelaxed()
	if v == 0 {
		return 0, false
	}
	return int(v - 1), true
}

func hintStore(h *atomix.Int64, index int) {
	h.StoreRelaxed(int64(index) + 1)
}

func hintClear(h *atomix.Int64) {
	h.StoreRelaxed(0)
}
