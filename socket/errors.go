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

package socket

// errClosedConn is the exact message net.Conn implementations return for a
// read/write race against a concurrent Close. It is produced internally by
// the standard library's poll.ErrNetClosing and carries no exported sentinel,
// so it is matched by exact string value rather than errors.Is.
const errClosedConn = "use of closed network connection"

// ErrorFilter suppresses the expected "use of closed network connection"
// error that a session's own teardown races against its send/receive loops.
// Any other error, including nil, passes through unchanged. The match is
// exact-string, not a substring or Contains check: an error that merely
// embeds or wraps the closed-connection text (extra context, different
// case, surrounding whitespace) is NOT filtered and must still be reported.
func ErrorFilter(err error) error {
	if err == nil {
		return nil
	}

	if err.Error() == errClosedConn {
		return nil
	}

	return err
}
