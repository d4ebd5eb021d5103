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

package tcp

import (
	libsck "github.com/nabbar/tlssocket/socket"
)

func (c *clientTcp) getSess() *libsck.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess
}

// Read pulls one receive cycle from the session: in unframed mode, one raw
// read off the socket (same byte-for-byte semantics as reading conn
// directly, so io.ReadFull composes across several calls exactly as
// before); in framed mode, the body of the next complete frame, buffering
// any leftover bytes across calls if p is smaller than the frame. It
// returns ErrConnection if the session has not been connected yet.
func (c *clientTcp) Read(p []byte) (int, error) {
	sess := c.getSess()
	if sess == nil {
		return 0, ErrConnection
	}

	if sess.PayloadAware {
		return c.readFramed(sess, p)
	}

	c.raiseInfo(libsck.ConnectionReceiveReady)
	n, err := sess.ReadRaw(p)
	if err != nil {
		coded := libsck.NewPeerGone(err)
		c.raiseError(coded)
		sess.Terminate(coded)
		return n, err
	}
	if n == 0 {
		coded := libsck.NewPeerGone(nil)
		c.raiseError(coded)
		sess.Terminate(coded)
		return 0, coded
	}
	c.raiseInfo(libsck.ConnectionReceiveComplete)
	return n, nil
}

// pendingFrame carries bytes from a frame already pulled off the wire but
// not yet fully copied into a caller's buffer.
func (c *clientTcp) readFramed(sess *libsck.Session, p []byte) (int, error) {
	c.mu.Lock()
	leftover := c.frameLeftover
	c.mu.Unlock()

	if len(leftover) == 0 {
		c.raiseInfo(libsck.ConnectionReceiveReady)
		f, err := sess.NextFrame()
		if err != nil {
			coded := libsck.NewPeerGone(err)
			c.raiseError(coded)
			sess.Terminate(coded)
			return 0, err
		}
		leftover = f
		c.raiseInfo(libsck.ConnectionReceiveComplete)
	}

	n := copy(p, leftover)

	c.mu.Lock()
	c.frameLeftover = leftover[n:]
	c.mu.Unlock()

	return n, nil
}

// Write queues p on the session's send pipeline and blocks until it has
// been written (or dropped by the overflow policy). It returns
// ErrConnection if the session has not been connected yet.
func (c *clientTcp) Write(p []byte) (int, error) {
	sess := c.getSess()
	if sess == nil {
		return 0, ErrConnection
	}

	if len(p) == 0 {
		return 0, nil
	}

	return sess.Send(p)
}

// Close tears down the session. It returns ErrConnection if the session was
// never connected or has already been closed; a subsequent Connect may
// re-establish a new session.
func (c *clientTcp) Close() error {
	c.mu.Lock()
	sess := c.sess
	c.conn = nil
	c.sess = nil
	c.mu.Unlock()

	if sess == nil {
		return ErrConnection
	}

	c.connected.Store(false)
	return sess.Close()
}
