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
	"crypto/tls"
	"errors"
	"io"
	"net"
	"time"

	"golang.org/x/sync/semaphore"

	libsck "github.com/nabbar/tlssocket/socket"
)

func (s *serverTcp) newListener() (net.Listener, error) {
	s.mu.Lock()
	address := s.address
	s.mu.Unlock()

	if address == "" {
		return nil, ErrInvalidAddress
	}

	return net.Listen("tcp", address)
}

// Listen runs the accept loop until ctx is canceled, StopListen/Shutdown is
// called, or a bind attempt itself fails. An accept error that is not a
// clean shutdown (a transient listener-socket fault) restarts the listener
// in place rather than returning. Every accepted connection is gated by
// MaxClientConnections, run through the TLS/credential handshake, and
// tracked as a Session while hdl runs in its own goroutine.
func (s *serverTcp) Listen(ctx context.Context) error {
	if s.hdl == nil {
		return ErrInvalidHandler
	}

	_, maxClients, _, _, _, _, _, _, _ := s.getAcceptConfig()
	if maxClients > 0 {
		s.gate = semaphore.NewWeighted(maxClients)
	} else {
		s.gate = nil
	}

	lctx, lcancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.cancel = lcancel
	s.done = make(chan struct{})
	done := s.done
	s.mu.Unlock()

	s.running.Store(true)
	s.gone.Store(false)
	s.raiseInfoServer("listener started")

	defer s.running.Store(false)

	var finalErr error

	for {
		ln, err := s.newListener()
		if err != nil {
			finalErr = err
			break
		}

		s.mu.Lock()
		s.listener = ln
		s.mu.Unlock()

		clean, acceptErr := s.acceptLoop(lctx, ln)
		if clean || lctx.Err() != nil {
			break
		}

		s.raiseError(acceptErr)
		s.raiseInfoServer("listener restarting after accept error")
		time.Sleep(50 * time.Millisecond)
	}

	close(done)
	s.raiseInfoServer("listener stopped accepting")

	s.wg.Wait()
	s.gone.Store(true)
	s.raiseInfoServer("listener drained")

	return finalErr
}

// acceptLoop runs Accept on ln until it fails. clean is true when the
// failure is the expected result of ctx cancellation (StopListen/Shutdown
// or the listener being closed for that reason); otherwise the accept
// error is returned so Listen can restart the listener.
func (s *serverTcp) acceptLoop(ctx context.Context, ln net.Listener) (clean bool, err error) {
	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	for {
		conn, aErr := ln.Accept()
		if aErr != nil {
			if errors.Is(aErr, net.ErrClosed) || ctx.Err() != nil {
				return true, nil
			}
			return false, aErr
		}

		if s.gate != nil && !s.gate.TryAcquire(1) {
			coded := libsck.NewSocketRefused(errMaxClientConnections)
			s.raiseError(coded)
			_ = conn.Close()
			continue
		}

		if s.upd != nil {
			s.upd(conn)
		}

		s.wg.Add(1)
		go func(c net.Conn) {
			defer s.wg.Done()
			s.handleConn(c)
		}(conn)
	}
}

// handleConn drives the acceptor state machine for one raw connection: an
// optional TLS server-auth phase, an optional credential sub-handshake
// capturing the principal, session installation, and the hdl dispatch.
func (s *serverTcp) handleConn(raw net.Conn) {
	sessionCreated := false

	defer func() {
		if r := recover(); r != nil {
			s.raiseError(&PanicError{Value: r})
		}
		if !sessionCreated {
			s.releaseGate()
		}
	}()

	authTimeout, _, payloadAware, marker, order, maxQueue, integrated, ignoreBad, credAuth := s.getAcceptConfig()
	if authTimeout <= 0 {
		authTimeout = defaultAuthTimeout
	}

	conn := raw

	if enabled, cfg := s.getTLS(); enabled {
		if cfg == nil {
			_ = conn.Close()
			coded := libsck.NewTlsNotAuthenticated(ErrInvalidTLSConfig)
			s.raiseError(coded)
			return
		}

		actx, acancel := context.WithTimeout(context.Background(), authTimeout)
		tc := tls.Server(conn, cfg.TLS(""))
		hErr := tc.HandshakeContext(actx)
		acancel()

		if hErr != nil {
			_ = conn.Close()
			coded := libsck.NewTlsNotAuthenticated(hErr)
			s.raiseError(coded)
			return
		}

		conn = tc
	}

	principal, err := s.credentialHandshake(conn, authTimeout, integrated, ignoreBad, credAuth)
	if err != nil {
		_ = conn.Close()
		return
	}

	var sess *libsck.Session
	sess = libsck.NewSession(conn, s.fctErrThunk(), s.fctInfoThunk(), func(error) {
		s.sessions.Delete(sess.ID)
		s.conns.Add(-1)
		s.releaseGate()
	})
	sess.PayloadAware = payloadAware
	sess.Marker = marker
	sess.Order = order
	sess.MaxQueue = maxQueue
	sess.Principal = principal

	sessionCreated = true
	defer func() { _ = sess.Close() }()

	s.sessions.Store(sess.ID, sess)
	s.conns.Add(1)
	s.raiseInfoConn(conn, libsck.ConnectionNew)

	req := &sessReader{sess: sess, framed: payloadAware}
	resp := &sessWriter{sess: sess}

	s.raiseInfoConn(conn, libsck.ConnectionHandler)
	s.hdl(req, resp)
}

// credentialHandshake runs fct, if integrated security is enabled, bounded
// by timeout. A rejected or timed-out exchange rejects the session unless
// ignoreBad is set, in which case the event is raised but the session
// proceeds with an empty principal.
func (s *serverTcp) credentialHandshake(conn net.Conn, timeout time.Duration, integrated, ignoreBad bool, fct CredentialAuthenticator) (string, error) {
	if !integrated || fct == nil {
		return "", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	type result struct {
		principal string
		err       error
	}
	done := make(chan result, 1)

	go func() {
		p, e := fct(conn)
		done <- result{principal: p, err: e}
	}()

	select {
	case <-ctx.Done():
		coded := libsck.NewAuthTimeout(ctx.Err())
		s.raiseError(coded)
		return "", coded
	case r := <-done:
		if r.err != nil {
			coded := libsck.NewBadCredentials(r.err)
			s.raiseError(coded)
			if !ignoreBad {
				return "", coded
			}
			return "", nil
		}
		return r.principal, nil
	}
}

// sessReader is the request half handed to a HandlerFunc. In framed mode it
// yields exactly one frame's body and then io.EOF; in unframed mode it
// streams directly off the session's socket.
type sessReader struct {
	sess   *libsck.Session
	framed bool
	buf    []byte
	done   bool
}

func (r *sessReader) Read(p []byte) (int, error) {
	if !r.framed {
		return r.sess.ReadRaw(p)
	}

	if r.done {
		return 0, io.EOF
	}

	if r.buf == nil {
		f, err := r.sess.NextFrame()
		if err != nil {
			r.done = true
			return 0, err
		}
		r.buf = f
	}

	if len(r.buf) == 0 {
		r.done = true
		return 0, io.EOF
	}

	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	if len(r.buf) == 0 {
		r.done = true
	}

	return n, nil
}

func (r *sessReader) Close() error {
	return nil
}

// sessWriter is the response half handed to a HandlerFunc. Writes are
// queued on the session's send pipeline exactly like Client.Write.
type sessWriter struct {
	sess *libsck.Session
}

func (w *sessWriter) Write(p []byte) (int, error) {
	return w.sess.Send(p)
}

func (w *sessWriter) Close() error {
	return nil
}
