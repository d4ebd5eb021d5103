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
	"context"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	libatm "github.com/nabbar/tlssocket/atomic"
	libtls "github.com/nabbar/tlssocket/certificates"
	libsck "github.com/nabbar/tlssocket/socket"
)

// CredentialAuthenticator performs an optional application-level handshake
// once a session's TLS phase (if any) has completed. It returns the
// principal name to record against the session, or an error to reject it.
type CredentialAuthenticator func(conn net.Conn) (principal string, err error)

// defaultAuthTimeout is the bound applied to TLS server-auth and, when
// configured, the credential sub-handshake, when no explicit AuthTimeout
// has been set.
const defaultAuthTimeout = 15 * time.Second

// ServerTcp is the acceptor side of a TCP (optionally TLS) listener. Each
// accepted connection becomes a Session tracked under its own id; hdl runs
// concurrently, one goroutine per session.
type ServerTcp interface {
	libsck.Server
}

type serverTcp struct {
	upd libsck.UpdateConn
	hdl libsck.HandlerFunc

	mu       sync.Mutex
	address  string
	listener net.Listener
	cancel   context.CancelFunc
	done     chan struct{}

	tlsMu      sync.RWMutex
	tlsEnabled bool
	tlsConfig  libtls.TLSConfig

	// cfgMu guards every accept-time tunable below, set by the concrete
	// (non-interface) setters and read once per accepted connection.
	cfgMu              sync.RWMutex
	authTimeout        time.Duration
	maxClients         int64
	payloadAware       bool
	payloadMarker      []byte
	payloadOrder       libsck.Endian
	maxSendQueue       int
	integratedSecurity bool
	ignoreBadCreds     bool
	credAuth           CredentialAuthenticator

	running atomic.Bool
	gone    atomic.Bool
	conns   atomic.Int64
	wg      sync.WaitGroup

	sessions libatm.MapTyped[string, *libsck.Session]
	gate     *semaphore.Weighted

	fctMu         sync.RWMutex
	fctErr        libsck.FuncError
	fctInfo       libsck.FuncInfo
	fctInfoServer libsck.FuncInfoServer
}

// New returns a ServerTcp bound to hdl. upd, when non-nil, is invoked on a
// raw net.Conn right after accept and before any TLS wrapping. The server
// has no listen address until RegisterServer is called.
func New(upd libsck.UpdateConn, hdl libsck.HandlerFunc) ServerTcp {
	s := &serverTcp{
		upd:      upd,
		hdl:      hdl,
		sessions: libatm.NewMapTyped[string, *libsck.Session](),
	}
	s.gone.Store(true)
	return s
}

// RegisterServer binds address as the listen target for subsequent Listen
// calls. It may be called again, before Listen, to rebind.
func (s *serverTcp) RegisterServer(address string) error {
	if address == "" {
		return ErrInvalidAddress
	}

	if _, err := net.ResolveTCPAddr("tcp", address); err != nil {
		return err
	}

	s.mu.Lock()
	s.address = address
	s.mu.Unlock()

	return nil
}

// SetTLS toggles TLS for subsequent Listen calls.
func (s *serverTcp) SetTLS(enable bool, cfg libtls.TLSConfig) error {
	if enable && cfg == nil {
		return ErrInvalidTLSConfig
	}

	s.tlsMu.Lock()
	s.tlsEnabled = enable
	s.tlsConfig = cfg
	s.tlsMu.Unlock()

	return nil
}

func (s *serverTcp) getTLS() (bool, libtls.TLSConfig) {
	s.tlsMu.RLock()
	defer s.tlsMu.RUnlock()
	return s.tlsEnabled, s.tlsConfig
}

// SetMaxClientConnections bounds the number of simultaneously live sessions
// the acceptor keeps; n <= 0 means unbounded. It takes effect on the next
// Listen call.
func (s *serverTcp) SetMaxClientConnections(n int64) {
	s.cfgMu.Lock()
	defer s.cfgMu.Unlock()
	s.maxClients = n
}

// SetTimeouts overrides the TLS/credential handshake bound; zero keeps
// defaultAuthTimeout.
func (s *serverTcp) SetTimeouts(auth time.Duration) {
	s.cfgMu.Lock()
	defer s.cfgMu.Unlock()
	s.authTimeout = auth
}

// SetPayloadMode switches each session's receive/send pipeline into the
// framed wire format described by socket.AddHeader/ExtractLength. marker
// may be nil to keep socket.DefaultMarker.
func (s *serverTcp) SetPayloadMode(aware bool, marker []byte, order libsck.Endian) {
	s.cfgMu.Lock()
	defer s.cfgMu.Unlock()
	s.payloadAware = aware
	s.payloadMarker = marker
	s.payloadOrder = order
}

// SetMaxSendQueueSize bounds the number of payloads buffered ahead of each
// session's socket; n <= 0 disables the drop policy.
func (s *serverTcp) SetMaxSendQueueSize(n int) {
	s.cfgMu.Lock()
	defer s.cfgMu.Unlock()
	s.maxSendQueue = n
}

// SetIntegratedSecurity enables an application-level credential handshake
// performed right after TLS server-auth completes for every accepted
// session. ignoreInvalid, when true, downgrades a rejected exchange to a
// logged event instead of rejecting the session.
func (s *serverTcp) SetIntegratedSecurity(fct CredentialAuthenticator, ignoreInvalid bool) {
	s.cfgMu.Lock()
	defer s.cfgMu.Unlock()
	s.integratedSecurity = fct != nil
	s.credAuth = fct
	s.ignoreBadCreds = ignoreInvalid
}

func (s *serverTcp) getAcceptConfig() (authTimeout time.Duration, maxClients int64, payloadAware bool, marker []byte, order libsck.Endian, maxQueue int, integrated, ignoreBad bool, credAuth CredentialAuthenticator) {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.authTimeout, s.maxClients, s.payloadAware, s.payloadMarker, s.payloadOrder, s.maxSendQueue, s.integratedSecurity, s.ignoreBadCreds, s.credAuth
}

// Session returns the live session tracked under id, or nil if none is
// currently tracked.
func (s *serverTcp) Session(id string) *libsck.Session {
	v, ok := s.sessions.Load(id)
	if !ok {
		return nil
	}
	return v
}

func (s *serverTcp) RegisterFuncError(fct libsck.FuncError) {
	s.fctMu.Lock()
	defer s.fctMu.Unlock()
	s.fctErr = fct
}

func (s *serverTcp) RegisterFuncInfo(fct libsck.FuncInfo) {
	s.fctMu.Lock()
	defer s.fctMu.Unlock()
	s.fctInfo = fct
}

func (s *serverTcp) RegisterFuncInfoServer(fct libsck.FuncInfoServer) {
	s.fctMu.Lock()
	defer s.fctMu.Unlock()
	s.fctInfoServer = fct
}

func (s *serverTcp) raiseError(errs ...error) {
	s.fctMu.RLock()
	fct := s.fctErr
	s.fctMu.RUnlock()

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

func (s *serverTcp) raiseInfoServer(msg string) {
	s.fctMu.RLock()
	fct := s.fctInfoServer
	s.fctMu.RUnlock()

	if fct != nil {
		fct(msg)
	}
}

func (s *serverTcp) fctInfoThunk() libsck.FuncInfo {
	return func(local, remote net.Addr, state libsck.ConnState) {
		s.fctMu.RLock()
		fct := s.fctInfo
		s.fctMu.RUnlock()
		if fct != nil {
			fct(local, remote, state)
		}
	}
}

func (s *serverTcp) fctErrThunk() libsck.FuncError {
	return func(errs ...error) {
		s.raiseError(errs...)
	}
}

func (s *serverTcp) raiseInfoConn(conn net.Conn, state libsck.ConnState) {
	s.fctMu.RLock()
	fct := s.fctInfo
	s.fctMu.RUnlock()

	if fct == nil {
		return
	}

	var local, remote net.Addr
	if conn != nil {
		local = conn.LocalAddr()
		remote = conn.RemoteAddr()
	}

	fct(local, remote, state)
}

// IsRunning reports whether the accept loop is currently active.
func (s *serverTcp) IsRunning() bool {
	return s.running.Load()
}

// IsGone reports whether the listener has never run, or has fully torn
// down (stopped accepting and drained every session) after a Shutdown.
func (s *serverTcp) IsGone() bool {
	return s.gone.Load()
}

// OpenConnections reports the number of sessions currently live.
func (s *serverTcp) OpenConnections() int64 {
	return s.conns.Load()
}

func (s *serverTcp) releaseGate() {
	if s.gate != nil {
		s.gate.Release(1)
	}
}
