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
	"io"

	libtls "github.com/nabbar/tlssocket/certificates"
)

// Client is the connector-side contract implemented by every protocol
// package under socket/client/*. A Client is constructed already bound to
// one remote address; Connect drives the handshake state machine described
// in this package's design notes and Close tears the session down.
type Client interface {
	io.ReadWriteCloser

	// RegisterFuncError registers the callback invoked with any non-nil,
	// non-filtered error raised by the connection's loops. A nil argument
	// clears the registration.
	RegisterFuncError(fct FuncError)

	// RegisterFuncInfo registers the callback invoked on every ConnState
	// transition. A nil argument clears the registration.
	RegisterFuncInfo(fct FuncInfo)

	// Connect drives the client through TcpConnecting, TlsAuthenticating,
	// and (if configured) CredAuthenticating, blocking until the session
	// reaches Connected or the attempt is abandoned. ctx bounds the whole
	// attempt, including any configured retry/failover.
	Connect(ctx context.Context) error

	// IsConnected reports whether the session is currently in the
	// Connected state.
	IsConnected() bool

	// Once sends request in a single framed or unframed write and, once a
	// reply is available, invokes response with the incoming stream. It is
	// a convenience composition of Write followed by one Read cycle and
	// does not require a prior call to Connect if the client auto-dials.
	// response may be nil to fire-and-forget.
	Once(ctx context.Context, request io.Reader, response Response) error

	// SetTLS toggles TLS for subsequent Connect calls. cfg may be nil when
	// enable is false. serverName overrides the SNI / certificate verify
	// hostname; an empty value falls back to the dialed host.
	SetTLS(enable bool, cfg libtls.TLSConfig, serverName string) error
}
