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
	"net"
	"runtime"

	libptc "github.com/nabbar/tlssocket/network/protocol"
)

// networkSupported reports whether n is one of the protocols this package
// can dial/listen on for the running platform.
func networkSupported(n libptc.NetworkProtocol) bool {
	switch n {
	case libptc.NetworkTCP, libptc.NetworkTCP4, libptc.NetworkTCP6,
		libptc.NetworkUDP, libptc.NetworkUDP4, libptc.NetworkUDP6:
		return true
	case libptc.NetworkUnix, libptc.NetworkUnixGram:
		return runtime.GOOS != "windows"
	default:
		return false
	}
}

// isTCPFamily reports whether n is tcp, tcp4 or tcp6; TLS is only meaningful
// over one of these.
func isTCPFamily(n libptc.NetworkProtocol) bool {
	switch n {
	case libptc.NetworkTCP, libptc.NetworkTCP4, libptc.NetworkTCP6:
		return true
	default:
		return false
	}
}

// isUnixFamily reports whether n is unix or unixgram.
func isUnixFamily(n libptc.NetworkProtocol) bool {
	switch n {
	case libptc.NetworkUnix, libptc.NetworkUnixGram:
		return true
	default:
		return false
	}
}

// resolveAddr parses addr against the resolver matching n, surfacing any
// malformed-address error from the net package unchanged.
func resolveAddr(n libptc.NetworkProtocol, addr string) error {
	switch {
	case isUnixFamily(n):
		_, err := net.ResolveUnixAddr(n.String(), addr)
		return err
	case n == libptc.NetworkUDP || n == libptc.NetworkUDP4 || n == libptc.NetworkUDP6:
		_, err := net.ResolveUDPAddr(n.String(), addr)
		return err
	default:
		_, err := net.ResolveTCPAddr(n.String(), addr)
		return err
	}
}
