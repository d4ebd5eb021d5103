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

// Package config carries the validated, serializable configuration for both
// connector and acceptor sides of the socket package. Values are plain data
// structs so they can be populated directly, decoded from viper, or built by
// hand in tests; Validate reports whether a value is usable as-is.
package config

import (
	"reflect"

	libtls "github.com/nabbar/tlssocket/certificates"
	libdur "github.com/nabbar/tlssocket/duration"
	libptc "github.com/nabbar/tlssocket/network/protocol"
	libsck "github.com/nabbar/tlssocket/socket"
)

// Client describes one remote endpoint a Client implementation dials.
type Client struct {
	// Network selects the dial protocol (tcp, tcp4, tcp6, udp, udp4, udp6,
	// unix, unixgram).
	Network libptc.NetworkProtocol `mapstructure:"network" json:"network" yaml:"network" toml:"network"`

	// Address is the dial target: host:port for network protocols, a
	// filesystem path for Unix-family protocols.
	Address string `mapstructure:"address" json:"address" yaml:"address" toml:"address"`

	// DialTimeout bounds the TCP-connect phase of Connect; zero means no
	// explicit deadline beyond ctx.
	DialTimeout libdur.Duration `mapstructure:"dialTimeout" json:"dialTimeout" yaml:"dialTimeout" toml:"dialTimeout"`

	// AuthTimeout bounds the TLS and, if configured, integrated-credential
	// handshake phases.
	AuthTimeout libdur.Duration `mapstructure:"authTimeout" json:"authTimeout" yaml:"authTimeout" toml:"authTimeout"`

	// MaxSendQueueSize bounds the number of queued, not-yet-written payloads
	// before the send pipeline starts dropping them; zero means unbounded.
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

	// MaxConnectionAttempts bounds how many times Connect retries a
	// connection-refused dial; < 0 means unbounded, 0 means 1 (no retry).
	MaxConnectionAttempts int64 `mapstructure:"maxConnectionAttempts" json:"maxConnectionAttempts" yaml:"maxConnectionAttempts" toml:"maxConnectionAttempts"`

	// IntegratedSecurity enables an application-level credential handshake
	// performed right after the TLS handshake completes.
	IntegratedSecurity bool `mapstructure:"integratedSecurity" json:"integratedSecurity" yaml:"integratedSecurity" toml:"integratedSecurity"`

	// IgnoreInvalidCredentials downgrades a rejected credential handshake
	// to a logged event instead of aborting the connection.
	IgnoreInvalidCredentials bool `mapstructure:"ignoreInvalidCredentials" json:"ignoreInvalidCredentials" yaml:"ignoreInvalidCredentials" toml:"ignoreInvalidCredentials"`

	// TLS holds the client-side TLS settings.
	TLS ClientTLS `mapstructure:"tls" json:"tls" yaml:"tls" toml:"tls"`
}

// ClientTLS carries the TLS settings of a Client configuration.
type ClientTLS struct {
	// Enabled turns on TLS for the dial.
	Enabled bool `mapstructure:"enabled" json:"enabled" yaml:"enabled" toml:"enabled"`

	// Config is the certificate/cipher/version bundle used to build the
	// stdlib *tls.Config for the dial.
	Config libtls.Config `mapstructure:"config" json:"config" yaml:"config" toml:"config"`

	// ServerName overrides SNI and certificate-hostname verification; it is
	// required whenever Enabled is true.
	ServerName string `mapstructure:"serverName" json:"serverName" yaml:"serverName" toml:"serverName"`

	dft libtls.TLSConfig
}

// Validate reports whether c is a usable dial configuration: the protocol
// must be supported on this platform, the address must resolve for that
// protocol, and, when TLS is enabled, the protocol must be TCP-family, a
// certificate bundle must be configured and a server name must be given.
func (c *Client) Validate() error {
	if !networkSupported(c.Network) {
		return ErrInvalidProtocol
	}

	if err := resolveAddr(c.Network, c.Address); err != nil {
		return err
	}

	if c.TLS.Enabled {
		if !isTCPFamily(c.Network) {
			return ErrInvalidTLSConfig
		}

		if reflect.DeepEqual(c.TLS.Config, libtls.Config{}) {
			return ErrInvalidTLSConfig
		}

		if c.TLS.ServerName == "" {
			return ErrInvalidTLSConfig
		}
	}

	return nil
}

// DefaultTLS records cfg as the fallback TLS configuration merged in by
// GetTLS. A nil cfg clears any previously recorded default.
func (c *Client) DefaultTLS(cfg libtls.TLSConfig) {
	c.TLS.dft = cfg
}

// GetTLS returns whether TLS is enabled, the resolved TLSConfig built from
// c.TLS.Config (merged over any value set with DefaultTLS), and the server
// name to verify against.
func (c *Client) GetTLS() (enabled bool, cfg libtls.TLSConfig, serverName string) {
	if !c.TLS.Enabled {
		return false, nil, ""
	}

	tc := c.TLS.Config

	if c.TLS.dft != nil {
		return true, tc.NewFrom(c.TLS.dft), c.TLS.ServerName
	}

	return true, tc.New(), c.TLS.ServerName
}
