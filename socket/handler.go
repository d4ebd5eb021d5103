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

import (
	"io"
	"net"
)

// Reader is the request side handed to a HandlerFunc. In framed mode, Read
// yields exactly one payload's body and returns io.EOF once it has been
// drained; in unframed mode it reads directly from the underlying socket.
// Close releases the request side without affecting Writer.
type Reader interface {
	io.Reader
	io.Closer
}

// Writer is the response side handed to a HandlerFunc. Writes are queued on
// the session's send pipeline exactly like a direct Client.Write call.
// Close signals the handler will not write again; it does not close the
// underlying session.
type Writer interface {
	io.Writer
	io.Closer
}

// HandlerFunc is invoked once per accepted session (or, for a one-shot
// exchange, once per request) with the request and response halves of that
// session. A handler owns the lifetime of both: it must Close each side it
// is done with, the same way the package's own echo/close helpers do.
type HandlerFunc func(request Reader, response Writer)

// UpdateConn customizes a raw net.Conn immediately after accept/dial and
// before any TLS wrapping, letting a caller tune socket options (NoDelay,
// keepalive, buffer sizes, deadlines) that this package does not expose
// directly as configuration.
type UpdateConn func(conn net.Conn)

// Response receives the reply stream from a one-shot request issued with
// Client.Once. It is invoked at most once per call and must not retain the
// io.Reader past its own return.
type Response func(r io.Reader)

// FuncError is the shape registered via RegisterFuncError. It may be called
// with more than one error at once (e.g. a teardown that surfaces both a
// send-exception and the terminating socket error).
type FuncError func(errs ...error)

// FuncInfo is the shape registered via RegisterFuncInfo; it reports the
// connection-state transition together with the two endpoints involved.
type FuncInfo func(local, remote net.Addr, state ConnState)

// FuncInfoServer is the shape registered via RegisterFuncInfoServer; it
// carries a free-form informational message about listener-level activity
// (accept-loop restarts, shutdown progress) that is not tied to one session.
type FuncInfoServer func(msg string)
