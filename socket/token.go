/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package socket

import "sync/atomic"

// Token is the one-shot cancellation latch shared by every loop of a
// session. It flips false -> true at most once; Cancel reports whether the
// caller was the one that performed the flip, so exactly one caller can
// take responsibility for the session's single connection-terminated event.
//
// This package's atomic.Value[T] generic wrapper treats a type's zero value
// as "empty" and silently substitutes a configured default on Store/CAS,
// which is the correct behavior for its LoadOrStore-style use cases but
// wrong for a strict flip-once latch where "false" is a genuine, load-bearing
// state rather than an absence of one. A Token therefore wraps sync/atomic.Bool
// directly rather than that wrapper.
type Token struct {
	cancelled atomic.Bool
}

// NewToken returns a fresh, not-yet-cancelled Token.
func NewToken() *Token {
	return &Token{}
}

// Cancel flips the token if it has not already been flipped. It returns
// true only for the caller that performed the flip.
func (t *Token) Cancel() (first bool) {
	return t.cancelled.CompareAndSwap(false, true)
}

// Cancelled reports whether the token has been flipped.
func (t *Token) Cancelled() bool {
	return t.cancelled.Load()
}
