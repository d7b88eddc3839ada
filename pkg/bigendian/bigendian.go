// Package bigendian converts fixed-width unsigned integers to and from
// big-endian byte sequences. Decoders report absence instead of panicking
// when the input length does not match the integer's byte width.
package bigendian

import "encoding/binary"

// PutUint16 writes v into the first 2 bytes of b, most significant first.
func PutUint16(b []byte, v uint16) { binary.BigEndian.PutUint16(b, v) }

// PutUint32 writes v into the first 4 bytes of b, most significant first.
func PutUint32(b []byte, v uint32) { binary.BigEndian.PutUint32(b, v) }

// PutUint64 writes v into the first 8 bytes of b, most significant first.
func PutUint64(b []byte, v uint64) { binary.BigEndian.PutUint64(b, v) }

// AppendUint16 appends the 2-byte big-endian form of v to dst.
func AppendUint16(dst []byte, v uint16) []byte { return binary.BigEndian.AppendUint16(dst, v) }

// AppendUint32 appends the 4-byte big-endian form of v to dst.
func AppendUint32(dst []byte, v uint32) []byte { return binary.BigEndian.AppendUint32(dst, v) }

// AppendUint64 appends the 8-byte big-endian form of v to dst.
func AppendUint64(dst []byte, v uint64) []byte { return binary.BigEndian.AppendUint64(dst, v) }

// Uint16 decodes a 2-byte big-endian sequence. ok is false when len(b) != 2.
func Uint16(b []byte) (v uint16, ok bool) {
	if len(b) != 2 {
		return 0, false
	}
	return binary.BigEndian.Uint16(b), true
}

// Uint32 decodes a 4-byte big-endian sequence. ok is false when len(b) != 4.
func Uint32(b []byte) (v uint32, ok bool) {
	if len(b) != 4 {
		return 0, false
	}
	return binary.BigEndian.Uint32(b), true
}

// Uint64 decodes an 8-byte big-endian sequence. ok is false when len(b) != 8.
func Uint64(b []byte) (v uint64, ok bool) {
	if len(b) != 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(b), true
}
