// Package ascii provides a validated 7-bit character type and its
// reinterpretations as bytes and text.
package ascii

import (
	"fmt"
	"unsafe"

	transmute "github.com/coolCucumber-cat/transmute-guard"
)

// Char is a byte that is known to be in the ASCII range. Values above
// [MaxChar] can only be produced by an unchecked conversion, which breaks the
// guards of this package.
type Char uint8

// MaxChar is the largest ASCII character.
const MaxChar Char = 0x7f

// New returns b as a Char if it is in the ASCII range.
func New(b byte) (Char, bool) {
	if b > byte(MaxChar) {
		return 0, false
	}
	return Char(b), true
}

// Byte returns the encoding of c.
func (c Char) Byte() byte { return byte(c) }

// String returns c as a one-character string.
func (c Char) String() string { return string(rune(c)) }

// CharToByte views a Char as its byte encoding. The reverse relation does not
// exist because most bytes are not ASCII.
var CharToByte = transmute.MustRegister(transmute.Func(transmute.Unsafe, Char.Byte))

// String views s as text without copying. g certifies that every element of s
// is an ASCII character, which also makes each element one byte wide. The
// string shares memory with s, so s must not be modified while the string is
// in use.
func String[U any](g transmute.Guard[U, Char], s []U) string {
	chars := transmute.Slice(g.Marker, s)
	if len(chars) == 0 {
		return ""
	}
	return unsafe.String((*byte)(unsafe.Pointer(unsafe.SliceData(chars))), len(chars))
}

// Bytes views chars as their byte encodings without copying.
func Bytes(chars []Char) []byte {
	return CharToByte.Slice(chars)
}

// NotASCIIError reports the first byte outside the ASCII range.
type NotASCIIError struct {
	Offset int
	Byte   byte
}

func (e *NotASCIIError) Error() string {
	return fmt.Sprintf("ascii: byte %#02x at offset %d is not ASCII", e.Byte, e.Offset)
}

// Chars validates s and returns a copy of it as characters.
func Chars(s string) ([]Char, error) {
	chars := make([]Char, len(s))
	for i := 0; i < len(s); i++ {
		c, ok := New(s[i])
		if !ok {
			return nil, &NotASCIIError{Offset: i, Byte: s[i]}
		}
		chars[i] = c
	}
	return chars, nil
}

// FromBytes validates b and returns it viewed as characters. The result shares
// memory with b.
func FromBytes(b []byte) ([]Char, error) {
	for i, c := range b {
		if _, ok := New(c); !ok {
			return nil, &NotASCIIError{Offset: i, Byte: c}
		}
	}
	return transmute.Slice(validated, b), nil
}

// validated is only used after every byte has been checked.
var validated = transmute.Unsized[byte, Char](transmute.Unsafe)
