// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package hintq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent stress tests that the race detector
// flags as false positives around the hint's relaxed-ordering reads.
const RaceEnabled = true
