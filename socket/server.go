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
	"context"

	libtls "github.com/nabbar/tlssocket/certificates"
)

// Server is the acceptor-side contract implemented by every protocol
// package under socket/server/*. RegisterServer binds the listen address;
// Listen runs the accept loop until ctx is canceled or Shutdown is called;
// Shutdown stops the listener and terminates every live session.
type Server interface {
	// RegisterFuncError registers the callback invoked with any non-nil,
	// non-filtered error raised by the listener or any of its sessions.
	RegisterFuncError(fct FuncError)

	// RegisterFuncInfo registers the callback invoked on every per-session
	// ConnState transition.
	RegisterFuncInfo(fct FuncInfo)

	// RegisterFuncInfoServer registers the callback invoked with
	// listener-level informational messages (accept-loop restarts,
	// shutdown progress) that are not tied to one session.
	RegisterFuncInfoServer(fct FuncInfoServer)

	// RegisterServer binds the listener to address without starting the
	// accept loop. It may be called again, before Listen, to change the
	// bound address.
	RegisterServer(address string) error

	// SetTLS toggles TLS for subsequent Listen calls. cfg may be nil when
	// enable is false.
	SetTLS(enable bool, cfg libtls.TLSConfig) error

	// Listen runs the accept loop, blocking until ctx is canceled, Shutdown
	// is called, or an unrecoverable listener error occurs.
	Listen(ctx context.Context) error

	// Shutdown stops the accept loop and terminates every live session,
	// waiting up to ctx's deadline for in-flight sessions to drain.
	Shutdown(ctx context.Context) error

	// IsRunning reports whether the accept loop is currently active.
	IsRunning() bool

	// IsGone reports whether the listener has never run or has fully torn
	// down after a Shutdown.
	IsGone() bool

	// OpenConnections reports the number of sessions currently live.
	OpenConnections() int64
}
