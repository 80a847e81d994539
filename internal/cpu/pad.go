// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cpu provides cache-line padding primitives shared by the
// queue's hot-path types.
//
// This generalizes the teacher's inline pad/padShort types (defined
// per-file next to whatever struct needed them) into one place, since
// this module only has one ring algorithm and therefore only one set of
// padded struct shapes to serve.
package cpu

// Pad fills a cache line to prevent false sharing between adjacent
// atomic fields.
type Pad [64]byte

// PadShort pads a struct out to a full cache line after an 8-byte
// (uintptr-sized) leading field.
type PadShort [64 - 8]byte
