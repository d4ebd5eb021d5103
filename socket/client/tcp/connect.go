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
	"net"
	"syscall"
	"time"

	libtls "github.com/nabbar/tlssocket/certificates"
	libsck "github.com/nabbar/tlssocket/socket"
)

// SetTLS toggles TLS for subsequent Connect calls. It has no effect on an
// already-established session; call Close then Connect again to switch.
func (c *clientTcp) SetTLS(enable bool, cfg libtls.TLSConfig, serverName string) error {
	if enable && cfg == nil {
		return ErrTLSConfig
	}

	c.tlsMu.Lock()
	defer c.tlsMu.Unlock()

	c.tlsEnabled = enable
	c.tlsConfig = cfg
	c.tlsServerName = serverName

	return nil
}

func (c *clientTcp) getTLS() (bool, libtls.TLSConfig, string) {
	c.tlsMu.RLock()
	defer c.tlsMu.RUnlock()
	return c.tlsEnabled, c.tlsConfig, c.tlsServerName
}

func isRefused(err error) bool {
	return errors.Is(err, syscall.ECONNREFUSED)
}

// Connect drives the connector state machine: dial (retried while the peer
// actively refuses, up to the configured attempt bound), an optional TLS
// handshake bounded by the auth timeout, and an optional credential
// sub-handshake bounded by the same timeout. A Session is installed, and
// IsConnected becomes true, only once every configured phase has
// succeeded.
func (c *clientTcp) Connect(ctx context.Context) error {
	dialTimeout, authTimeout, maxAttempts, payloadAware, marker, order, maxQueue, integrated, ignoreBad, credAuth := c.getConnectConfig()

	if authTimeout <= 0 {
		authTimeout = defaultAuthTimeout
	}

	conn, err := c.dialWithRetry(ctx, dialTimeout, maxAttempts)
	if err != nil {
		return err
	}

	enabled, cfg, serverName := c.getTLS()
	if enabled {
		if cfg == nil {
			_ = conn.Close()
			err = ErrTLSConfig
			c.raiseError(err)
			return err
		}

		host := serverName
		if host == "" {
			host, _, _ = net.SplitHostPort(c.address)
		}

		actx, acancel := context.WithTimeout(ctx, authTimeout)
		tc := tls.Client(conn, cfg.TLS(host))
		hErr := tc.HandshakeContext(actx)
		acancel()

		if hErr != nil {
			_ = conn.Close()
			coded := libsck.NewTlsNotAuthenticated(hErr)
			c.raiseError(coded)
			return coded
		}

		conn = tc
	}

	principal, err := c.credentialHandshake(ctx, conn, authTimeout, integrated, ignoreBad, credAuth)
	if err != nil {
		_ = conn.Close()
		return err
	}

	sess := libsck.NewSession(conn, c.fctErrThunk(), c.fctInfoThunk(), func(error) {
		c.connected.Store(false)
	})
	sess.PayloadAware = payloadAware
	sess.Marker = marker
	sess.Order = order
	sess.MaxQueue = maxQueue
	sess.Principal = principal

	c.mu.Lock()
	c.conn = conn
	c.sess = sess
	c.mu.Unlock()

	c.connected.Store(true)
	c.raiseInfo(libsck.ConnectionNew)
	return nil
}

// credentialHandshake runs fct, if integrated security is enabled, bounded
// by timeout. A rejected or timed-out exchange aborts the connection
// unless ignoreBad is set, in which case the event is raised but the
// session proceeds with an empty principal.
func (c *clientTcp) credentialHandshake(ctx context.Context, conn net.Conn, timeout time.Duration, integrated, ignoreBad bool, fct CredentialAuthenticator) (string, error) {
	if !integrated || fct == nil {
		return "", nil
	}

	cctx, cancel := context.WithTimeout(ctx, timeout)
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
	case <-cctx.Done():
		coded := libsck.NewAuthTimeout(cctx.Err())
		c.raiseError(coded)
		return "", coded
	case r := <-done:
		if r.err != nil {
			coded := libsck.NewBadCredentials(r.err)
			c.raiseError(coded)
			if !ignoreBad {
				return "", coded
			}
			return "", nil
		}
		return r.principal, nil
	}
}

// dialWithRetry dials c.address, retrying only while the peer actively
// refuses the connection and attempts remain (maxAttempts < 0 means
// unbounded). Any other dial error, context cancellation, or attempt
// exhaustion returns immediately.
func (c *clientTcp) dialWithRetry(ctx context.Context, dialTimeout time.Duration, maxAttempts int64) (net.Conn, error) {
	var d net.Dialer
	var lastErr error

	for attempt := int64(1); maxAttempts < 0 || attempt <= maxAttempts; attempt++ {
		c.raiseInfo(libsck.ConnectionDial)

		dctx := ctx
		var cancel context.CancelFunc
		if dialTimeout > 0 {
			dctx, cancel = context.WithTimeout(ctx, dialTimeout)
		}

		conn, err := d.DialContext(dctx, "tcp", c.address)
		if cancel != nil {
			cancel()
		}

		if err == nil {
			return conn, nil
		}

		if !isRefused(err) {
			coded := libsck.NewSocketFatal(err)
			c.raiseError(coded)
			return nil, coded
		}

		lastErr = libsck.NewSocketRefused(err)
		c.raiseError(lastErr)

		if (maxAttempts >= 0 && attempt >= maxAttempts) || ctx.Err() != nil {
			return nil, lastErr
		}
	}

	return nil, lastErr
}

func (c *clientTcp) fctErrThunk() libsck.FuncError {
	return func(errs ...error) {
		c.raiseError(errs...)
	}
}

func (c *clientTcp) fctInfoThunk() libsck.FuncInfo {
	return func(local, remote net.Addr, state libsck.ConnState) {
		c.fctMu.RLock()
		fct := c.fctInfo
		c.fctMu.RUnlock()
		if fct != nil {
			fct(local, remote, state)
		}
	}
}
