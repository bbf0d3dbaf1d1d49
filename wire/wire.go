/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package wire provides the binary primitives used to ship plan fragments
// between the coordinator and remote executors. Integers travel as varints,
// strings are length-prefixed, doubles are IEEE 754 bits.
package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Writer accumulates an encoded plan fragment.
type Writer struct {
	buf bytes.Buffer
	scr [binary.MaxVarintLen64]byte
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the encoded payload written so far.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// WriteVarint writes a signed integer as a zig-zag varint.
func (w *Writer) WriteVarint(v int64) {
	n := binary.PutVarint(w.scr[:], v)
	w.buf.Write(w.scr[:n])
}

// WriteUvarint writes an unsigned integer as a varint.
func (w *Writer) WriteUvarint(v uint64) {
	n := binary.PutUvarint(w.scr[:], v)
	w.buf.Write(w.scr[:n])
}

// WriteInt writes an int as a varint.
func (w *Writer) WriteInt(v int) {
	w.WriteVarint(int64(v))
}

// WriteBool writes a single 0/1 byte.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// WriteFloat64 writes the IEEE 754 bits as a fixed 8-byte little-endian value.
func (w *Writer) WriteFloat64(v float64) {
	binary.LittleEndian.PutUint64(w.scr[:8], math.Float64bits(v))
	w.buf.Write(w.scr[:8])
}

// WriteString writes a length-prefixed UTF-8 string.
func (w *Writer) WriteString(s string) {
	w.WriteUvarint(uint64(len(s)))
	w.buf.WriteString(s)
}

// Reader decodes a plan fragment produced by Writer. All reads return an
// error on truncated or malformed input; a plan fragment arriving over the
// cluster transport is untrusted by this layer.
type Reader struct {
	r *bytes.Reader
}

// NewReader creates a Reader over the given payload.
func NewReader(data []byte) *Reader {
	return &Reader{r: bytes.NewReader(data)}
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return r.r.Len()
}

// ReadVarint reads a signed zig-zag varint.
func (r *Reader) ReadVarint() (int64, error) {
	v, err := binary.ReadVarint(r.r)
	if err != nil {
		return 0, fmt.Errorf("read varint: %w", err)
	}
	return v, nil
}

// ReadUvarint reads an unsigned varint.
func (r *Reader) ReadUvarint() (uint64, error) {
	v, err := binary.ReadUvarint(r.r)
	if err != nil {
		return 0, fmt.Errorf("read uvarint: %w", err)
	}
	return v, nil
}

// ReadInt reads an int written by WriteInt.
func (r *Reader) ReadInt() (int, error) {
	v, err := r.ReadVarint()
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// ReadBool reads a single 0/1 byte.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return false, fmt.Errorf("read bool: %w", err)
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("read bool: invalid byte %#x", b)
	}
}

// ReadFloat64 reads a fixed 8-byte IEEE 754 value.
func (r *Reader) ReadFloat64() (float64, error) {
	var raw [8]byte
	if _, err := io.ReadFull(r.r, raw[:]); err != nil {
		return 0, fmt.Errorf("read float64: %w", err)
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(raw[:])), nil
}

// ReadString reads a length-prefixed UTF-8 string.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadUvarint()
	if err != nil {
		return "", fmt.Errorf("read string length: %w", err)
	}
	if n > uint64(r.r.Len()) {
		return "", fmt.Errorf("read string: length %d exceeds remaining %d bytes", n, r.r.Len())
	}
	raw := make([]byte, n)
	if _, err := io.ReadFull(r.r, raw); err != nil {
		return "", fmt.Errorf("read string: %w", err)
	}
	return string(raw), nil
}
