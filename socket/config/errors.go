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

import "errors"

// ErrInvalidProtocol is returned when the configured NetworkProtocol is not
// one this package can dial/listen on, or is a Unix-family protocol on a
// platform that does not support Unix domain sockets.
var ErrInvalidProtocol = errors.New("socket/config: invalid protocol")

// ErrInvalidTLSConfig is returned when TLS is enabled on a protocol that
// cannot carry it, when no certificate material was configured, or (client
// side) when no server name was given to verify against.
var ErrInvalidTLSConfig = errors.New("socket/config: invalid TLS config")

// ErrInvalidGroup is returned when Server.GroupPerm falls outside the
// [-1, MaxGID] range accepted for a Unix socket's owning group.
var ErrInvalidGroup = errors.New("socket/config: invalid unix group")

// MaxGID is the largest group id this package will accept for GroupPerm;
// it matches the traditional 16-bit gid_t ceiling used by most Unix systems.
const MaxGID = 32767
