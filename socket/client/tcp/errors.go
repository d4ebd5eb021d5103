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

// Package tcp implements the TCP/TLS connector side of the socket package:
// dialing, the TLS handshake, and the framed/unframed send and receive
// pipelines described by the parent socket package.
package tcp

import "errors"

// ErrAddress is returned by New when the given address cannot be resolved
// as a TCP endpoint.
var ErrAddress = errors.New("socket/client/tcp: invalid address")

// ErrInstance is returned when a method is called on a nil or zero-value
// ClientTCP.
var ErrInstance = errors.New("socket/client/tcp: nil client instance")

// ErrConnection is returned by Read/Write/Close when the session has not
// been connected yet, or is no longer connected.
var ErrConnection = errors.New("socket/client/tcp: not connected")

// ErrTLSConfig is returned by SetTLS when enable is true and cfg is nil.
var ErrTLSConfig = errors.New("socket/client/tcp: invalid tls config")
