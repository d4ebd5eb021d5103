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

package config

import (
	"time"

	libsck "github.com/nabbar/tlssocket/socket"
	sckclt "github.com/nabbar/tlssocket/socket/client/tcp"
	scksrv "github.com/nabbar/tlssocket/socket/server/tcp"
)

// clientTuner exposes the client/tcp concrete setters that have a direct
// Client config equivalent. IntegratedSecurity has no factory wiring: a
// CredentialAuthenticator is a function and cannot be carried by a data
// config; a caller that sets IntegratedSecurity must also type-assert the
// returned libsck.Client to *sckclt.ClientTCP's concrete type and call
// SetIntegratedSecurity directly, the same way StopListen/StopGone are
// reached on the server side.
type clientTuner interface {
	SetTimeouts(dial, auth time.Duration)
	SetMaxConnectionAttempts(n int64)
	SetPayloadMode(aware bool, marker []byte, order libsck.Endian)
	SetMaxSendQueueSize(n int)
}

// serverTuner exposes the server/tcp concrete setters that have a direct
// Server config equivalent. See clientTuner for why IntegratedSecurity is
// not wired here.
type serverTuner interface {
	SetTimeouts(auth time.Duration)
	SetMaxClientConnections(n int64)
	SetPayloadMode(aware bool, marker []byte, order libsck.Endian)
	SetMaxSendQueueSize(n int)
}

// New builds a running-ready acceptor from s: it validates the
// configuration, creates a server bound to hdl (upd, if non-nil, is
// invoked on every accepted connection before any TLS wrapping), registers
// the listen address, applies TLS when configured, and carries over the
// auth timeout, MaxClientConnections, payload framing, and send-queue
// bound onto the concrete acceptor. The returned libsck.Server still needs
// Listen to actually start accepting.
func (s *Server) New(upd libsck.UpdateConn, hdl libsck.HandlerFunc) (libsck.Server, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	if !isTCPFamily(s.Network) {
		return nil, ErrInvalidProtocol
	}

	srv := scksrv.New(upd, hdl)

	if err := srv.RegisterServer(s.Address); err != nil {
		return nil, err
	}

	if enabled, cfg := s.GetTLS(); enabled {
		if err := srv.SetTLS(true, cfg); err != nil {
			return nil, err
		}
	}

	if t, ok := srv.(serverTuner); ok {
		t.SetTimeouts(s.AuthTimeout.Time())
		t.SetMaxClientConnections(s.MaxClientConnections)
		t.SetPayloadMode(s.PayloadAware, s.PayloadMarker, s.PayloadEndianOrder)
		t.SetMaxSendQueueSize(s.MaxSendQueueSize)
	}

	return srv, nil
}

// New builds a ready-to-dial connector from c: it validates the
// configuration, creates a client for the configured address, applies TLS
// when configured, and carries over the dial/auth timeouts,
// MaxConnectionAttempts, payload framing, and send-queue bound onto the
// concrete connector. The returned libsck.Client still needs Connect (or
// Once) to actually dial.
func (c *Client) New() (libsck.Client, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if !isTCPFamily(c.Network) {
		return nil, ErrInvalidProtocol
	}

	cli, err := sckclt.New(c.Address)
	if err != nil {
		return nil, err
	}

	if enabled, cfg, serverName := c.GetTLS(); enabled {
		if err = cli.SetTLS(true, cfg, serverName); err != nil {
			return nil, err
		}
	}

	if t, ok := cli.(clientTuner); ok {
		t.SetTimeouts(c.DialTimeout.Time(), c.AuthTimeout.Time())
		t.SetMaxConnectionAttempts(c.MaxConnectionAttempts)
		t.SetPayloadMode(c.PayloadAware, c.PayloadMarker, c.PayloadEndianOrder)
		t.SetMaxSendQueueSize(c.MaxSendQueueSize)
	}

	return cli, nil
}
