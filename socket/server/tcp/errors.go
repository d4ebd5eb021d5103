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

// Package tcp implements the TCP/TLS acceptor side of the socket package:
// listening, accepting, the TLS handshake, and the per-session handler
// dispatch described by the parent socket package.
package tcp

import (
	"errors"
	"fmt"
)

// ErrInvalidAddress is returned by RegisterServer/Listen when no usable
// listen address has been registered.
var ErrInvalidAddress = errors.New("socket/server/tcp: invalid listen address")

// ErrInvalidHandler is returned by Listen when no HandlerFunc has been
// supplied to New.
var ErrInvalidHandler = errors.New("socket/server/tcp: invalid handler")

// ErrInvalidInstance is returned by methods called on a nil ServerTcp.
var ErrInvalidInstance = errors.New("socket/server/tcp: invalid server instance")

// ErrShutdownTimeout is returned by Shutdown/StopListen when the caller's
// context expires before the accept loop has fully stopped.
var ErrShutdownTimeout = errors.New("socket/server/tcp: shutdown timeout")

// ErrGoneTimeout is returned by StopGone when the caller's context expires
// before every live session has drained.
var ErrGoneTimeout = errors.New("socket/server/tcp: gone timeout")

// ErrInvalidTLSConfig is returned by SetTLS when enable is true and cfg is
// nil.
var ErrInvalidTLSConfig = errors.New("socket/server/tcp: invalid tls config")

// errMaxClientConnections is the parent wrapped by the taxonomy-coded
// refusal raised when a connection arrives at MaxClientConnections.
var errMaxClientConnections = errors.New("socket/server/tcp: max client connections reached")

// PanicError wraps a recovered handler panic so the accept loop can report
// it through the registered FuncError instead of crashing the listener.
type PanicError struct {
	Value interface{}
}

func (e *PanicError) Error() string {
	return "socket/server/tcp: handler panic: " + formatPanic(e.Value)
}

func formatPanic(v interface{}) string {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("%v", v)
}
