// Package idtheory generates compact, sortable, 64-bit identifiers for use as
// primary keys or correlation tokens.
//
// An ID packs a 48-bit millisecond timestamp (counted from 2020-01-01T00:00:00Z)
// into its high bits and a 16-bit sequence field into its low bits, so the
// numeric order of raw values matches generation order. The sequence field is
// itself split into a per-millisecond counter byte and a caller-supplied tag
// byte, letting callers embed a shard or type discriminator without widening
// the key.
//
// IDs are sequential and guessable; they provide no cryptographic
// unpredictability and no cross-process uniqueness coordination.
package idtheory

import "time"

const (
	// EpochMillis is the fixed epoch (2020-01-01T00:00:00Z) in Unix
	// milliseconds. The timestamp field counts milliseconds from here.
	EpochMillis int64 = 1577836800000

	timestampBits = 48
	sequenceBits  = 16
	tagBits       = 8
	counterBits   = sequenceBits - tagBits

	timestampShift = sequenceBits
	counterShift   = tagBits

	counterMask = 1<<counterBits - 1

	// MaxTag is the largest caller-supplied tag value.
	MaxTag = 1<<tagBits - 1
)

// ID is an immutable 64-bit identifier.
//
// Bit layout, most significant first: 48 bits of milliseconds since
// EpochMillis, 8 bits of per-millisecond counter, 8 bits of caller tag.
// Any 64-bit pattern is a valid ID; reconstructing one from storage performs
// no validation.
type ID uint64

// Null is the distinguished "no identifier" sentinel. The generator never
// returns it: the epoch elapsed long ago, so every minted ID carries a
// nonzero timestamp field.
const Null ID = 0

// FromUint64 wraps a raw 64-bit value as an ID without validation.
func FromUint64(v uint64) ID { return ID(v) }

// Uint64 returns the raw 64-bit value.
func (id ID) Uint64() uint64 { return uint64(id) }

// IsNull reports whether id is the Null sentinel.
func (id ID) IsNull() bool { return id == Null }

// Time returns the instant the ID was minted, in UTC, reconstructed from the
// timestamp field. For Null this is the epoch instant itself.
func (id ID) Time() time.Time {
	ms := int64(id >> timestampShift)
	return time.UnixMilli(EpochMillis + ms).UTC()
}

// Sequence returns the full 16-bit sequence field: counter byte in the high
// half, tag byte in the low half.
func (id ID) Sequence() uint16 { return uint16(id) }

// Counter returns the per-millisecond counter byte.
func (id ID) Counter() uint8 { return uint8(id >> counterShift) }

// Tag returns the caller-supplied tag byte.
func (id ID) Tag() uint8 { return uint8(id) }

// Compare returns -1, 0, or 1 ordering by raw unsigned value. Because the
// timestamp occupies the high bits, this is exactly (timestamp, sequence)
// lexicographic order.
func (id ID) Compare(other ID) int {
	switch {
	case id < other:
		return -1
	case id > other:
		return 1
	default:
		return 0
	}
}

// Less reports whether id orders before other.
func (id ID) Less(other ID) bool { return id < other }

// pack assembles the wire form. The counter masks to its low byte before
// shifting, reproducing the 8-bit effective counter width of the original
// format; see Generator for the trade-off.
func pack(ms int64, counter uint16, tag uint8) ID {
	return ID(uint64(ms)<<timestampShift | uint64(counter&counterMask)<<counterShift | uint64(tag))
}
