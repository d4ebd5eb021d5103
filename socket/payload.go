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

// Payload is one outbound buffer queued on a Session's send pipeline. Its
// completion latch is signaled exactly once, either by the send loop after
// the underlying write (nil error on success) or by the queue-overflow
// drop policy (ErrorQueueOverflow) if it was dumped before ever reaching
// the socket.
type Payload struct {
	// Buf is the payload body, unmodified by framing: the send loop
	// prepends the marker/length header itself when the owning Session is
	// payload-aware.
	Buf []byte

	sess *Session
	done chan struct{}
	err  error
}

func newPayload(sess *Session, buf []byte) *Payload {
	return &Payload{
		Buf:  buf,
		sess: sess,
		done: make(chan struct{}),
	}
}

// signal flips the completion latch. It must be called at most once per
// Payload; the send loop and the overflow-drop policy never touch the same
// Payload, so no further synchronization is required here.
func (p *Payload) signal(err error) {
	p.err = err
	close(p.done)
}

// Wait blocks until the payload has been written (or dropped) and returns
// the outcome.
func (p *Payload) Wait() error {
	<-p.done
	return p.err
}

// Session returns the Session this payload was queued on.
func (p *Payload) Session() *Session {
	return p.sess
}
