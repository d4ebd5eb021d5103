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

// ConnState enumerates the phases a session goes through, from the
// connector/acceptor's point of view, over the life of one socket. It is
// the payload of the FuncInfo callback registered via RegisterFuncInfo.
type ConnState uint8

const (
	// ConnectionDial marks an outbound dial attempt (client only).
	ConnectionDial ConnState = iota
	// ConnectionNew marks a freshly accepted or connected socket, before
	// any read/write has been attempted.
	ConnectionNew
	// ConnectionRead marks the receive loop performing a read.
	ConnectionRead
	// ConnectionCloseRead marks the receive side of the socket closing.
	ConnectionCloseRead
	// ConnectionHandler marks a HandlerFunc invocation for this session.
	ConnectionHandler
	// ConnectionWrite marks the send loop performing a write.
	ConnectionWrite
	// ConnectionCloseWrite marks the send side of the socket closing.
	ConnectionCloseWrite
	// ConnectionClose marks the session fully closed.
	ConnectionClose
	// ConnectionSendStart marks a queued payload being handed to the
	// socket for writing.
	ConnectionSendStart
	// ConnectionSendComplete marks a payload fully written and its
	// completion latch signaled.
	ConnectionSendComplete
	// ConnectionReceiveReady marks data available to be read for the
	// current receive cycle (one frame in framed mode, one raw read in
	// unframed mode).
	ConnectionReceiveReady
	// ConnectionReceiveComplete marks one receive cycle delivered to the
	// registered handler.
	ConnectionReceiveComplete
)

// String renders a human-readable label for the state, used by the default
// FuncInfo logging adapter and by tests asserting on log output.
func (s ConnState) String() string {
	switch s {
	case ConnectionDial:
		return "Dial Connection"
	case ConnectionNew:
		return "New Connection"
	case ConnectionRead:
		return "Read Incoming Stream"
	case ConnectionCloseRead:
		return "Close Incoming Stream"
	case ConnectionHandler:
		return "Run HandlerFunc"
	case ConnectionWrite:
		return "Write Outgoing Steam"
	case ConnectionCloseWrite:
		return "Close Outgoing Stream"
	case ConnectionClose:
		return "Close Connection"
	case ConnectionSendStart:
		return "Send Payload Start"
	case ConnectionSendComplete:
		return "Send Payload Complete"
	case ConnectionReceiveReady:
		return "Receive Ready"
	case ConnectionReceiveComplete:
		return "Receive Complete"
	default:
		return "unknown connection state"
	}
}
