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

package protocol

import (
	"bytes"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// unquote strips a single layer of matching double or single quotes, used
// because callers sometimes hand us an already-quoted scalar (raw JSON bytes
// passed straight to UnmarshalText, for instance).
func unquote(b []byte) []byte {
	b = bytes.Trim(b, `'`)
	b = bytes.Trim(b, `"`)
	return b
}

// UnmarshalJSON implements json.Unmarshaler. Unknown or empty input resolves
// to NetworkEmpty without error, matching the tolerant-decode posture of the
// rest of this codebase's enum types.
func (n *NetworkProtocol) UnmarshalJSON(b []byte) error {
	*n = Parse(string(unquote(b)))
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *NetworkProtocol) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	*n = Parse(s)
	return nil
}

// UnmarshalTOML implements the go-toml Unmarshaler contract.
func (n *NetworkProtocol) UnmarshalTOML(i interface{}) error {
	switch v := i.(type) {
	case string:
		*n = Parse(v)
	case []byte:
		*n = Parse(string(v))
	default:
		*n = NetworkEmpty
	}
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *NetworkProtocol) UnmarshalText(b []byte) error {
	*n = Parse(string(unquote(b)))
	return nil
}

// UnmarshalCBOR implements the fxamacker/cbor Unmarshaler contract.
func (n *NetworkProtocol) UnmarshalCBOR(b []byte) error {
	var s string
	if err := cbor.Unmarshal(b, &s); err != nil {
		return err
	}
	*n = Parse(s)
	return nil
}
