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

import (
	liberr "github.com/nabbar/tlssocket/errors"
)

// Error codes for every kind in the session error taxonomy: a refused dial
// (retried by the connector), a fatal socket error, an auth-phase timeout,
// a failed TLS or credential handshake, a framing violation, a send-queue
// overflow, a peer that went away, and a disposed session. Every session
// error raised through FuncError is one of these, wrapping the originating
// net/tls error as its parent.
const (
	ErrorSocketRefused liberr.CodeError = iota + liberr.MinPkgSocket
	ErrorSocketFatal
	ErrorAuthTimeout
	ErrorTlsNotAuthenticated
	ErrorTlsNotEncrypted
	ErrorBadCredentials
	ErrorFramingError
	ErrorQueueOverflow
	ErrorPeerGone
	ErrorDisposed
)

var isCodeError = false

// IsCodeError reports whether this package's error codes have been
// registered with the errors package's message registry.
func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = liberr.ExistInMapMessage(ErrorSocketRefused)
	liberr.RegisterIdFctMessage(ErrorSocketRefused, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case liberr.UNK_ERROR:
		return ""
	case ErrorSocketRefused:
		return "socket: connection refused"
	case ErrorSocketFatal:
		return "socket: fatal socket error"
	case ErrorAuthTimeout:
		return "socket: authentication phase timed out"
	case ErrorTlsNotAuthenticated:
		return "socket: tls handshake failed"
	case ErrorTlsNotEncrypted:
		return "socket: peer is not using tls"
	case ErrorBadCredentials:
		return "socket: credential handshake rejected"
	case ErrorFramingError:
		return "socket: framing error"
	case ErrorQueueOverflow:
		return "socket: send queue overflow, oldest payloads dumped"
	case ErrorPeerGone:
		return "socket: peer gone"
	case ErrorDisposed:
		return "socket: session disposed"
	}

	return ""
}

// NewSocketRefused wraps parent (typically a syscall.ECONNREFUSED-carrying
// net.OpError) as a retried connection-refused error.
func NewSocketRefused(parent error) liberr.Error {
	return liberr.New(uint16(ErrorSocketRefused), getMessage(ErrorSocketRefused), parent)
}

// NewSocketFatal wraps parent as a terminating, non-retried socket error.
func NewSocketFatal(parent error) liberr.Error {
	return liberr.New(uint16(ErrorSocketFatal), getMessage(ErrorSocketFatal), parent)
}

// NewAuthTimeout reports that an auth phase (TLS or credential handshake)
// did not complete before its timeout.
func NewAuthTimeout(parent error) liberr.Error {
	return liberr.New(uint16(ErrorAuthTimeout), getMessage(ErrorAuthTimeout), parent)
}

// NewTlsNotAuthenticated wraps a failed TLS handshake.
func NewTlsNotAuthenticated(parent error) liberr.Error {
	return liberr.New(uint16(ErrorTlsNotAuthenticated), getMessage(ErrorTlsNotAuthenticated), parent)
}

// NewTlsNotEncrypted reports a peer that did not negotiate TLS when it was
// required.
func NewTlsNotEncrypted(parent error) liberr.Error {
	return liberr.New(uint16(ErrorTlsNotEncrypted), getMessage(ErrorTlsNotEncrypted), parent)
}

// NewBadCredentials wraps a rejected application-level credential exchange.
func NewBadCredentials(parent error) liberr.Error {
	return liberr.New(uint16(ErrorBadCredentials), getMessage(ErrorBadCredentials), parent)
}

// NewFramingError wraps a *FramingError (or any framing violation) as a
// taxonomy-coded, receive-side-terminating error.
func NewFramingError(parent error) liberr.Error {
	return liberr.New(uint16(ErrorFramingError), getMessage(ErrorFramingError), parent)
}

// NewQueueOverflow reports that the send queue reached its configured
// bound and the oldest pending payloads were dumped to make room.
func NewQueueOverflow() liberr.Error {
	return liberr.New(uint16(ErrorQueueOverflow), getMessage(ErrorQueueOverflow))
}

// NewPeerGone reports a zero-byte read or a write attempted after the
// session stopped being connected.
func NewPeerGone(parent error) liberr.Error {
	return liberr.New(uint16(ErrorPeerGone), getMessage(ErrorPeerGone), parent)
}

// NewDisposed reports an operation attempted on an already-terminated
// session; it is suppressed by ErrorFilter during an orderly shutdown race.
func NewDisposed() liberr.Error {
	return liberr.New(uint16(ErrorDisposed), getMessage(ErrorDisposed))
}
