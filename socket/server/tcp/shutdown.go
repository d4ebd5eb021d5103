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
	"time"
)

// StopListen cancels the accept loop so it stops taking new connections.
// It returns once the loop has actually exited Accept, or ErrShutdownTimeout
// if ctx expires first. Sessions already in flight are left running.
func (s *serverTcp) StopListen(ctx context.Context) error {
	s.mu.Lock()
	cancel := s.cancel
	done := s.done
	s.mu.Unlock()

	if cancel == nil || done == nil {
		return nil
	}

	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ErrShutdownTimeout
	}
}

// StopGone blocks until every in-flight session has drained (OpenConnections
// reaches zero) or ctx expires, in which case it returns ErrGoneTimeout.
func (s *serverTcp) StopGone(ctx context.Context) error {
	if s.IsGone() {
		return nil
	}

	tick := time.NewTicker(10 * time.Millisecond)
	defer tick.Stop()

	for {
		if s.IsGone() {
			return nil
		}

		select {
		case <-tick.C:
			continue
		case <-ctx.Done():
			return ErrGoneTimeout
		}
	}
}

// Shutdown stops the accept loop and waits for every live session to drain,
// in sequence, both bounded by ctx.
func (s *serverTcp) Shutdown(ctx context.Context) error {
	if err := s.StopListen(ctx); err != nil {
		return err
	}

	return s.StopGone(ctx)
}
