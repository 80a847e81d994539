// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file contains examples that use atomix concurrency primitives.
// These trigger false positives with Go's race detector because atomix
// atomic operations appear as regular memory accesses to the detector.
// The examples are correct; they're excluded from race testing.

package hintq_test

import (
	"fmt"

	"code.hybscloud.com/hintq"
)

// ExampleQueue demonstrates a single-threaded round trip through a
// bounded ring queue.
func ExampleQueue() {
	q := hintq.New(8)
	var enq hintq.EnqueueCtx
	var deq hintq.DequeueCtx

	for i := 1; i <= 5; i++ {
		if err := q.TryEnqueue(&enq, uintptr(i*10)); err != nil {
			fmt.Println("enqueue failed:", err)
		}
	}

	for range 5 {
		v, err := q.TryDequeue(&deq)
		if err != nil {
			fmt.Println("dequeue failed:", err)
			continue
		}
		fmt.Println(v)
	}

	// Output:
	// 10
	// 20
	// 30
	// 40
	// 50
}

// ExampleQueue_full demonstrates the busy signal on a full queue: the
// rejected payload is left untouched for the caller to retry or drop.
func ExampleQueue_full() {
	q := hintq.New(2)
	var enq hintq.EnqueueCtx

	fmt.Println(q.TryEnqueue(&enq, 0x1))
	fmt.Println(q.TryEnqueue(&enq, 0x2))
	fmt.Println(hintq.IsWouldBlock(q.TryEnqueue(&enq, 0x3)))

	// Output:
	// <nil>
	// <nil>
	// true
}
