package idtheory

import (
	"database/sql/driver"
	"fmt"
	"strconv"

	"github.com/theory-cloud/idtheory/pkg/bigendian"
)

// String returns the canonical human-readable form: the decimal rendering of
// the raw 64-bit value.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// MarshalJSON encodes the ID as exactly one JSON number token holding the
// unsigned 64-bit value.
func (id ID) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(id), 10), nil
}

// UnmarshalJSON decodes a bare JSON number into the raw value. Field
// semantics are not validated.
func (id *ID) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("idtheory: decode %q: %w", data, err)
	}
	*id = ID(v)
	return nil
}

// MarshalText renders the decimal form, for text encoders and map keys.
func (id ID) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(id), 10), nil
}

// UnmarshalText reverses MarshalText.
func (id *ID) UnmarshalText(text []byte) error {
	v, err := strconv.ParseUint(string(text), 10, 64)
	if err != nil {
		return fmt.Errorf("idtheory: decode %q: %w", text, err)
	}
	*id = ID(v)
	return nil
}

// Value stores the ID in a bigint column. The 48-bit timestamp field keeps
// the sign bit clear for several millennia, so the int64 reinterpretation is
// lossless and order-preserving for minted IDs.
func (id ID) Value() (driver.Value, error) {
	return int64(id), nil
}

// Scan reads an ID back from a bigint column. NULL scans as the Null
// sentinel.
func (id *ID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*id = Null
		return nil
	case int64:
		*id = ID(v)
		return nil
	case []byte:
		return id.UnmarshalText(v)
	case string:
		return id.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("idtheory: cannot scan %T into ID", src)
	}
}

// AppendBytes appends the 8-byte big-endian form of the raw value.
func AppendBytes(dst []byte, id ID) []byte {
	return bigendian.AppendUint64(dst, uint64(id))
}

// FromBytes decodes an ID from its 8-byte big-endian form. ok is false when
// b is any other length.
func FromBytes(b []byte) (ID, bool) {
	v, ok := bigendian.Uint64(b)
	return ID(v), ok
}
