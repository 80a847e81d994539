// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hintq

// Option configures a [Queue] at construction time via [New].
type Option func(*Queue)

// WithMaxTry overrides [DefaultMaxTry], the number of bounded CAS
// attempts a single hint or claim probe makes before giving up.
//
// Lower it to 1 for model-checking and other exhaustive-schedule test
// harnesses, where a large state space from many retries per step makes
// the search intractable. Panics if n < 1.
func WithMaxTry(n int) Option {
	if n < 1 {
		panic("hintq: MaxTry must be >= 1")
	}
	return func(q *Queue) {
		q.maxTry = n
	}
}
