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

package socket

import (
	"io"
	"net"
	"sync"

	libuid "github.com/hashicorp/go-uuid"
)

// Session is the shared state every connector/acceptor loop reads and
// writes through once a socket is established: the transport itself, the
// framing configuration, the outbound send queue and its in-flight gate,
// the inbound reassembly buffer, the byte counters, and the cancellation
// token that lets whichever loop notices the failure first own the single
// connection-terminated event.
//
// A Session is not exposed across package boundaries by field access; the
// client/tcp and server/tcp packages each embed a *Session and drive it
// through Send/nextRaw/nextFrame/Close.
type Session struct {
	// ID uniquely identifies this session for the lifetime of the process.
	ID string

	// Conn is the fully established transport: raw TCP, or TLS/credential
	// wrapped, depending on what the connector/acceptor negotiated.
	Conn net.Conn

	// Principal is the identity captured by an optional credential
	// handshake; empty when IntegratedSecurity was not used.
	Principal string

	// Token is the one-shot cancellation latch for this session.
	Token *Token

	// Stats holds the cumulative byte counters.
	Stats Stats

	// PayloadAware switches Send/receive to the framed wire format.
	PayloadAware bool
	// Marker overrides DefaultMarker when non-empty.
	Marker []byte
	// Order selects the framing length field's byte order.
	Order Endian

	// MaxQueue bounds the send queue; <= 0 disables the drop policy
	// (unbounded queue).
	MaxQueue int

	fctErr  FuncError
	fctInfo FuncInfo

	qMu     sync.Mutex
	queue   []*Payload
	sending bool

	rMu  sync.Mutex
	acc  []byte
	pend [][]byte

	closeOnce sync.Once
	onClose   func(err error)
}

// NewSession builds a Session around an already-established conn. fctErr
// and fctInfo may be nil. onClose, if non-nil, is invoked exactly once
// (under the session's cancellation token) when the session terminates,
// whatever triggered the termination.
func NewSession(conn net.Conn, fctErr FuncError, fctInfo FuncInfo, onClose func(err error)) *Session {
	id, err := libuid.GenerateUUID()
	if err != nil {
		id = ""
	}

	return &Session{
		ID:      id,
		Conn:    conn,
		Token:   NewToken(),
		Order:   LittleEndian,
		fctErr:  fctErr,
		fctInfo: fctInfo,
		onClose: onClose,
	}
}

func (s *Session) marker() []byte {
	if len(s.Marker) > 0 {
		return s.Marker
	}
	return DefaultMarker
}

func (s *Session) raiseInfo(state ConnState) {
	if s.fctInfo == nil {
		return
	}

	var local, remote net.Addr
	if s.Conn != nil {
		local = s.Conn.LocalAddr()
		remote = s.Conn.RemoteAddr()
	}

	s.fctInfo(local, remote, state)
}

func (s *Session) raiseError(errs ...error) {
	if s.fctErr == nil {
		return
	}

	n := make([]error, 0, len(errs))
	for _, e := range errs {
		if e != nil {
			n = append(n, e)
		}
	}

	if len(n) > 0 {
		s.fctErr(n...)
	}
}

// Send queues buf on the send pipeline and blocks until it has been
// written (or dropped by the overflow policy), returning len(buf) and nil
// on success. It is the synchronous counterpart of the internally
// asynchronous, gated send loop described by this package.
func (s *Session) Send(buf []byte) (int, error) {
	if s.Token.Cancelled() {
		return 0, NewDisposed()
	}

	p := s.enqueue(buf)

	if err := p.Wait(); err != nil {
		return 0, err
	}

	return len(buf), nil
}

// enqueue appends p to the send queue, opportunistically dumping the
// entire queue first if it has reached MaxQueue, and launches the send
// loop if none is currently in flight. The `sending` flag is this
// Session's in-flight gate, guarded by qMu rather than a free-standing
// atomic: every producer and the loop itself observe and flip it inside
// the same critical section, which rules out the lost-wakeup race a
// separate atomic swap would otherwise need extra bookkeeping to avoid.
func (s *Session) enqueue(buf []byte) *Payload {
	p := newPayload(s, buf)

	s.qMu.Lock()
	if s.MaxQueue > 0 && len(s.queue) >= s.MaxQueue {
		dumped := s.queue
		s.queue = nil
		for _, d := range dumped {
			d.signal(NewQueueOverflow())
		}
		s.raiseError(NewQueueOverflow())
	}

	s.queue = append(s.queue, p)
	launch := !s.sending
	if launch {
		s.sending = true
	}
	s.qMu.Unlock()

	if launch {
		go s.sendLoop()
	}

	return p
}

func (s *Session) sendLoop() {
	for {
		s.qMu.Lock()
		if len(s.queue) == 0 {
			s.sending = false
			s.qMu.Unlock()
			return
		}

		p := s.queue[0]
		s.queue = s.queue[1:]
		s.qMu.Unlock()

		s.raiseInfo(ConnectionSendStart)

		out := p.Buf
		if s.PayloadAware {
			out = AddHeader(s.marker(), s.Order, p.Buf)
		}

		_, err := s.Conn.Write(out)
		if err != nil {
			coded := NewSocketFatal(err)
			p.signal(coded)
			s.raiseError(coded)
			s.terminate(coded)
			return
		}

		s.Stats.addSent(len(p.Buf))
		p.signal(nil)
		s.raiseInfo(ConnectionSendComplete)
	}
}

// ReadRaw performs one unframed read directly off the socket, updating the
// receive byte counter. It is used by the unframed send/receive pipeline.
func (s *Session) ReadRaw(p []byte) (int, error) {
	n, err := s.Conn.Read(p)
	if n > 0 {
		s.Stats.addRecv(n)
	}
	return n, err
}

// NextFrame returns the body of the next complete frame, accumulating raw
// reads until one is available. A zero-length body (ExtractOK with
// length == 0) is returned as an empty, non-nil slice rather than treated
// as end-of-stream: an empty frame is a deliberate, delivered payload, not
// a peer disconnect. It returns io.EOF on a graceful peer close and a
// *FramingError, via NewFramingError's parent, on a marker/length
// violation.
func (s *Session) NextFrame() ([]byte, error) {
	for {
		s.rMu.Lock()
		if len(s.pend) > 0 {
			f := s.pend[0]
			s.pend = s.pend[1:]
			s.rMu.Unlock()
			return f, nil
		}
		s.rMu.Unlock()

		buf := make([]byte, DefaultBufferSize)
		n, err := s.Conn.Read(buf)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, io.EOF
		}
		s.Stats.addRecv(n)

		s.rMu.Lock()
		s.acc = append(s.acc, buf[:n]...)

		for {
			status, length, consumed := ExtractLength(s.marker(), s.Order, s.acc)

			if status == ExtractInvalid {
				s.rMu.Unlock()
				fe := &FramingError{Reason: "marker mismatch or invalid length"}
				return nil, NewFramingError(fe)
			}
			if status == ExtractNeedMore {
				break
			}
			if len(s.acc) < consumed+int(length) {
				break
			}

			body := make([]byte, length)
			copy(body, s.acc[consumed:consumed+int(length)])
			s.acc = s.acc[consumed+int(length):]
			s.pend = append(s.pend, body)
		}
		s.rMu.Unlock()
	}
}

// terminate is the single place a session is torn down from. Only the
// first caller (per Token.Cancel) closes the socket, drains the send
// queue with ErrorDisposed, and invokes onClose; later callers are no-ops.
func (s *Session) terminate(cause error) {
	if !s.Token.Cancel() {
		return
	}

	s.qMu.Lock()
	dumped := s.queue
	s.queue = nil
	s.sending = false
	s.qMu.Unlock()

	for _, p := range dumped {
		p.signal(NewDisposed())
	}

	s.closeOnce.Do(func() {
		_ = s.Conn.Close()
		s.raiseInfo(ConnectionClose)
		if s.onClose != nil {
			s.onClose(cause)
		}
	})
}

// Close terminates the session gracefully (no error cause).
func (s *Session) Close() error {
	s.terminate(nil)
	return nil
}

// Terminate tears the session down because of err, the same way an
// unrecoverable send/receive error would.
func (s *Session) Terminate(err error) {
	s.terminate(err)
}
