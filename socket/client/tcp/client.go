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
	"net"
	"sync"
	"sync/atomic"
	"time"

	libtls "github.com/nabbar/tlssocket/certificates"
	libsck "github.com/nabbar/tlssocket/socket"
)

// CredentialAuthenticator performs an optional application-level handshake
// once the transport (and, if enabled, TLS) is established. It returns the
// principal name to record against the session, or an error to abort the
// connection attempt.
type CredentialAuthenticator func(conn net.Conn) (principal string, err error)

// defaultAuthTimeout is the bound applied to the TLS handshake and, when
// configured, the credential sub-handshake, when no explicit AuthTimeout
// has been set.
const defaultAuthTimeout = 15 * time.Second

// ClientTCP is the connector side of a single TCP (optionally TLS) session.
// It is created already bound to a remote address; Connect dials and, when
// TLS is configured, performs the handshake before the session becomes
// usable for Read/Write.
type ClientTCP interface {
	libsck.Client
}

type clientTcp struct {
	address string

	mu            sync.Mutex
	conn          net.Conn
	sess          *libsck.Session
	frameLeftover []byte

	connected atomic.Bool

	tlsMu         sync.RWMutex
	tlsEnabled    bool
	tlsConfig     libtls.TLSConfig
	tlsServerName string

	// cfgMu guards every connect-time tunable below, set by the concrete
	// (non-interface) setters and read once at the top of Connect.
	cfgMu              sync.RWMutex
	dialTimeout        time.Duration
	authTimeout        time.Duration
	maxAttempts        int64
	payloadAware       bool
	payloadMarker      []byte
	payloadOrder       libsck.Endian
	maxSendQueue       int
	integratedSecurity bool
	ignoreBadCreds     bool
	credAuth           CredentialAuthenticator

	fctMu   sync.RWMutex
	fctErr  libsck.FuncError
	fctInfo libsck.FuncInfo
}

// New resolves address as a TCP endpoint and returns a ClientTCP bound to
// it. Connect must be called (or Once used) before the session is usable.
// By default a single dial attempt is made (MaxConnectionAttempts == 1);
// use SetMaxConnectionAttempts to enable the retry-on-refused behavior.
func New(address string) (ClientTCP, error) {
	if _, err := net.ResolveTCPAddr("tcp", address); err != nil {
		return nil, ErrAddress
	}

	return &clientTcp{
		address:     address,
		maxAttempts: 1,
	}, nil
}

// SetMaxConnectionAttempts bounds how many times Connect retries a
// ConnectionRefused dial before giving up; n < 0 means unbounded, n == 0 is
// treated as 1 (no retry). It has no effect on a Connect already in flight.
func (c *clientTcp) SetMaxConnectionAttempts(n int64) {
	c.cfgMu.Lock()
	defer c.cfgMu.Unlock()
	if n == 0 {
		n = 1
	}
	c.maxAttempts = n
}

// SetTimeouts overrides the dial and auth-phase timeouts; zero keeps
// net.Dialer's own default (dial) or defaultAuthTimeout (auth).
func (c *clientTcp) SetTimeouts(dial, auth time.Duration) {
	c.cfgMu.Lock()
	defer c.cfgMu.Unlock()
	c.dialTimeout = dial
	c.authTimeout = auth
}

// SetPayloadMode switches Read/Write into the framed wire format described
// by socket.AddHeader/ExtractLength. marker may be nil to keep
// socket.DefaultMarker.
func (c *clientTcp) SetPayloadMode(aware bool, marker []byte, order libsck.Endian) {
	c.cfgMu.Lock()
	defer c.cfgMu.Unlock()
	c.payloadAware = aware
	c.payloadMarker = marker
	c.payloadOrder = order
}

// SetMaxSendQueueSize bounds the number of payloads buffered ahead of the
// socket; n <= 0 disables the drop policy.
func (c *clientTcp) SetMaxSendQueueSize(n int) {
	c.cfgMu.Lock()
	defer c.cfgMu.Unlock()
	c.maxSendQueue = n
}

// SetIntegratedSecurity enables an application-level credential handshake
// performed right after the TLS handshake completes. ignoreInvalid, when
// true, downgrades a rejected credential exchange to a logged event instead
// of aborting the connection.
func (c *clientTcp) SetIntegratedSecurity(fct CredentialAuthenticator, ignoreInvalid bool) {
	c.cfgMu.Lock()
	defer c.cfgMu.Unlock()
	c.integratedSecurity = fct != nil
	c.credAuth = fct
	c.ignoreBadCreds = ignoreInvalid
}

func (c *clientTcp) getConnectConfig() (dial, auth time.Duration, maxAttempts int64, payloadAware bool, marker []byte, order libsck.Endian, maxQueue int, integrated bool, ignoreBad bool, credAuth CredentialAuthenticator) {
	c.cfgMu.RLock()
	defer c.cfgMu.RUnlock()
	return c.dialTimeout, c.authTimeout, c.maxAttempts, c.payloadAware, c.payloadMarker, c.payloadOrder, c.maxSendQueue, c.integratedSecurity, c.ignoreBadCreds, c.credAuth
}

// Session returns the active Session, or nil if the client has never
// connected or is currently disconnected.
func (c *clientTcp) Session() *libsck.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess
}

func (c *clientTcp) RegisterFuncError(fct libsck.FuncError) {
	c.fctMu.Lock()
	defer c.fctMu.Unlock()
	c.fctErr = fct
}

func (c *clientTcp) RegisterFuncInfo(fct libsck.FuncInfo) {
	c.fctMu.Lock()
	defer c.fctMu.Unlock()
	c.fctInfo = fct
}

func (c *clientTcp) raiseError(errs ...error) {
	c.fctMu.RLock()
	fct := c.fctErr
	c.fctMu.RUnlock()

	if fct == nil {
		return
	}

	n := make([]error, 0, len(errs))
	for _, e := range errs {
		if e != nil {
			n = append(n, e)
		}
	}

	if len(n) > 0 {
		fct(n...)
	}
}

func (c *clientTcp) raiseInfo(state libsck.ConnState) {
	c.fctMu.RLock()
	fct := c.fctInfo
	c.fctMu.RUnlock()

	if fct == nil {
		return
	}

	var local, remote net.Addr

	c.mu.Lock()
	if c.conn != nil {
		local = c.conn.LocalAddr()
		remote = c.conn.RemoteAddr()
	}
	c.mu.Unlock()

	fct(local, remote, state)
}

func (c *clientTcp) getConn() net.Conn {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn
}

// IsConnected reports whether the session currently holds a live
// connection. It is a passive flag set by Connect and cleared by Close; it
// does not itself probe the socket.
func (c *clientTcp) IsConnected() bool {
	return c.connected.Load()
}
