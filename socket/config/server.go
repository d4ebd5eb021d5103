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
	"reflect"

	libtls "github.com/nabbar/tlssocket/certificates"
	libdur "github.com/nabbar/tlssocket/duration"
	libprm "github.com/nabbar/tlssocket/file/perm"
	libptc "github.com/nabbar/tlssocket/network/protocol"
	libsck "github.com/nabbar/tlssocket/socket"
)

// Server describes one listener a Server implementation binds and accepts
// connections on.
type Server struct {
	// Network selects the listen protocol (tcp, tcp4, tcp6, udp, udp4, udp6,
	// unix, unixgram).
	Network libptc.NetworkProtocol `mapstructure:"network" json:"network" yaml:"network" toml:"network"`

	// Address is the bind target: host:port for network protocols, a
	// filesystem path for Unix-family protocols.
	Address string `mapstructure:"address" json:"address" yaml:"address" toml:"address"`

	// PermFile is the filesystem permission applied to a Unix socket file
	// once bound; ignored for network protocols.
	PermFile libprm.Perm `mapstructure:"permFile" json:"permFile" yaml:"permFile" toml:"permFile"`

	// GroupPerm is the owning group id applied to a Unix socket file once
	// bound; -1 leaves the current process group untouched. Ignored for
	// network protocols.
	GroupPerm int32 `mapstructure:"groupPerm" json:"groupPerm" yaml:"groupPerm" toml:"groupPerm"`

	// ConIdleTimeout closes a session that has exchanged no frame for this
	// long; zero disables idle collection.
	ConIdleTimeout libdur.Duration `mapstructure:"conIdleTimeout" json:"conIdleTimeout" yaml:"conIdleTimeout" toml:"conIdleTimeout"`

	// AuthTimeout bounds the TLS and, if configured, integrated-credential
	// handshake phases for each accepted session.
	AuthTimeout libdur.Duration `mapstructure:"authTimeout" json:"authTimeout" yaml:"authTimeout" toml:"authTimeout"`

	// MaxClientConnections bounds the number of simultaneously live
	// sessions the acceptor keeps; zero means unbounded.
	MaxClientConnections int64 `mapstructure:"maxClientConnections" json:"maxClientConnections" yaml:"maxClientConnections" toml:"maxClientConnections"`

	// MaxSendQueueSize bounds the number of queued, not-yet-written payloads
	// per session before the send pipeline starts dropping them; zero means
	// unbounded.
	MaxSendQueueSize int `mapstructure:"maxSendQueueSize" json:"maxSendQueueSize" yaml:"maxSendQueueSize" toml:"maxSendQueueSize"`

	// PayloadAware switches the receive/send pipeline into framed mode
	// (marker + length-prefixed body) rather than raw passthrough.
	PayloadAware bool `mapstructure:"payloadAware" json:"payloadAware" yaml:"payloadAware" toml:"payloadAware"`

	// PayloadMarker overrides the framing marker; empty keeps the package
	// default when PayloadAware is true.
	PayloadMarker []byte `mapstructure:"payloadMarker" json:"payloadMarker" yaml:"payloadMarker" toml:"payloadMarker"`

	// PayloadEndianOrder selects the byte order of the framing length
	// field when PayloadAware is true; the zero value is little-endian.
	PayloadEndianOrder libsck.Endian `mapstructure:"payloadEndianOrder" json:"payloadEndianOrder" yaml:"payloadEndianOrder" toml:"payloadEndianOrder"`

	// IntegratedSecurity enables an application-level credential handshake
	// performed right after TLS server-auth completes, for every accepted
	// session.
	IntegratedSecurity bool `mapstructure:"integratedSecurity" json:"integratedSecurity" yaml:"integratedSecurity" toml:"integratedSecurity"`

	// IgnoreInvalidCredentials downgrades a rejected credential handshake
	// to a logged event instead of rejecting the session.
	IgnoreInvalidCredentials bool `mapstructure:"ignoreInvalidCredentials" json:"ignoreInvalidCredentials" yaml:"ignoreInvalidCredentials" toml:"ignoreInvalidCredentials"`

	// TLS holds the server-side TLS settings.
	TLS ServerTLS `mapstructure:"tls" json:"tls" yaml:"tls" toml:"tls"`
}

// ServerTLS carries the TLS settings of a Server configuration.
type ServerTLS struct {
	// Enabled turns on TLS for the listener.
	Enabled bool `mapstructure:"enabled" json:"enabled" yaml:"enabled" toml:"enabled"`

	// Config is the certificate/cipher/version bundle used to build the
	// stdlib *tls.Config presented to dialing clients.
	Config libtls.Config `mapstructure:"config" json:"config" yaml:"config" toml:"config"`

	dft libtls.TLSConfig
}

// Validate reports whether s is a usable listen configuration: the protocol
// must be supported on this platform, the address must resolve for that
// protocol, GroupPerm must fall within [-1, MaxGID], and, when TLS is
// enabled, the protocol must be TCP-family and a certificate bundle must be
// configured.
func (s *Server) Validate() error {
	if !networkSupported(s.Network) {
		return ErrInvalidProtocol
	}

	if err := resolveAddr(s.Network, s.Address); err != nil {
		return err
	}

	if s.GroupPerm < -1 || s.GroupPerm > MaxGID {
		return ErrInvalidGroup
	}

	if s.TLS.Enabled {
		if !isTCPFamily(s.Network) {
			return ErrInvalidTLSConfig
		}

		if reflect.DeepEqual(s.TLS.Config, libtls.Config{}) {
			return ErrInvalidTLSConfig
		}
	}

	return nil
}

// DefaultTLS records cfg as the fallback TLS configuration merged in by
// GetTLS. A nil cfg clears any previously recorded default.
func (s *Server) DefaultTLS(cfg libtls.TLSConfig) {
	s.TLS.dft = cfg
}

// GetTLS returns whether TLS is enabled and the resolved TLSConfig built
// from s.TLS.Config (merged over any value set with DefaultTLS).
func (s *Server) GetTLS() (enabled bool, cfg libtls.TLSConfig) {
	if !s.TLS.Enabled {
		return false, nil
	}

	tc := s.TLS.Config

	if s.TLS.dft != nil {
		return true, tc.NewFrom(s.TLS.dft)
	}

	return true, tc.New()
}
