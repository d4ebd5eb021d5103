/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
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

// Stats carries the byte counters of one Session, updated by its send and
// receive loops and safe for concurrent reads while either loop is active.
type Stats struct {
	sent atomic.Int64
	recv atomic.Int64
}

func (s *Stats) addSent(n int) {
	s.sent.Add(int64(n))
}

func (s *Stats) addRecv(n int) {
	s.recv.Add(int64(n))
}

// BytesSent returns the cumulative number of body bytes successfully
// written by the send loop (header bytes, in framed mode, are not counted).
func (s *Stats) BytesSent() int64 {
	return s.sent.Load()
}

// BytesReceived returns the cumulative number of raw bytes read off the
// socket by the receive loop (header bytes are counted; they are part of
// what was actually read from the wire).
func (s *Stats) BytesReceived() int64 {
	return s.recv.Load()
}
