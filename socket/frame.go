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

import (
	"encoding/binary"
	"fmt"
)

// DefaultMarker is the marker used when PayloadMarker is left unconfigured
// and PayloadAware is true.
var DefaultMarker = []byte{0xAA, 0x55}

// LengthSize is the width, in bytes, of the length field following the
// marker in the payload-aware wire format.
const LengthSize = 4

// ExtractStatus is the outcome of a call to ExtractLength.
type ExtractStatus uint8

const (
	// ExtractNeedMore means fewer than len(marker)+LengthSize bytes are
	// available yet; the caller should keep accumulating header bytes.
	ExtractNeedMore ExtractStatus = iota
	// ExtractOK means a length was decoded successfully.
	ExtractOK
	// ExtractInvalid means the marker did not match or the decoded length
	// is out of the legal range; the receive side must terminate.
	ExtractInvalid
)

// Endian selects the byte order used to encode/decode the framing length
// field. The zero value is little-endian, matching this package's default.
type Endian uint8

const (
	LittleEndian Endian = iota
	BigEndian
)

func (e Endian) order() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// AddHeader prepends marker || length(len(body)) to body, returning a new
// slice. marker may be empty (M = 0), degenerating to a pure length prefix.
func AddHeader(marker []byte, order Endian, body []byte) []byte {
	out := make([]byte, 0, len(marker)+LengthSize+len(body))
	out = append(out, marker...)

	lb := make([]byte, LengthSize)
	order.order().PutUint32(lb, uint32(len(body)))
	out = append(out, lb...)
	out = append(out, body...)

	return out
}

// ExtractLength inspects buf (the bytes accumulated so far for one header)
// against the configured marker and byte order. On ExtractOK, length holds
// the decoded body length and consumed holds len(marker)+LengthSize, the
// number of header bytes to discard from the accumulator.
func ExtractLength(marker []byte, order Endian, buf []byte) (status ExtractStatus, length uint32, consumed int) {
	need := len(marker) + LengthSize

	if len(buf) < need {
		return ExtractNeedMore, 0, 0
	}

	if len(marker) > 0 {
		for i := range marker {
			if buf[i] != marker[i] {
				return ExtractInvalid, 0, 0
			}
		}
	}

	length = order.order().Uint32(buf[len(marker):need])
	return ExtractOK, length, need
}

// FramingError reports an invalid marker or an impossible decoded length
// encountered by ExtractLength; it terminates the receive side per this
// package's error taxonomy.
type FramingError struct {
	Reason string
}

func (e *FramingError) Error() string {
	return fmt.Sprintf("socket: framing error: %s", e.Reason)
}
