package idtheory

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "0", Null.String())
	require.Equal(t, "42", FromUint64(42).String())
	require.Equal(t, "18446744073709551615", FromUint64(^uint64(0)).String())
}

func TestID_JSONSingleValue(t *testing.T) {
	t.Parallel()

	// Encodes as one bare number token, not an object and not a string.
	data, err := json.Marshal(FromUint64(18446744073709551615))
	require.NoError(t, err)
	require.Equal(t, "18446744073709551615", string(data))

	var id ID
	require.NoError(t, json.Unmarshal(data, &id))
	require.Equal(t, FromUint64(18446744073709551615), id)
}

func TestID_JSONInsideStruct(t *testing.T) {
	t.Parallel()

	type record struct {
		Key ID `json:"key"`
	}

	data, err := json.Marshal(record{Key: FromUint64(7)})
	require.NoError(t, err)
	require.JSONEq(t, `{"key":7}`, string(data))

	var out record
	require.NoError(t, json.Unmarshal([]byte(`{"key":7}`), &out))
	require.Equal(t, FromUint64(7), out.Key)
}

func TestID_JSONRejectsNonNumbers(t *testing.T) {
	t.Parallel()

	var id ID
	require.Error(t, json.Unmarshal([]byte(`"42"`), &id))
	require.Error(t, json.Unmarshal([]byte(`-1`), &id))
	require.Error(t, json.Unmarshal([]byte(`{}`), &id))
}

func TestID_TextRoundTrip(t *testing.T) {
	t.Parallel()

	id := FromUint64(123456789)
	text, err := id.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "123456789", string(text))

	var back ID
	require.NoError(t, back.UnmarshalText(text))
	require.Equal(t, id, back)

	require.Error(t, back.UnmarshalText([]byte("not-a-number")))
}

func TestID_SQLValueScan(t *testing.T) {
	t.Parallel()

	id := pack(1_000_000, 3, 9)

	v, err := id.Value()
	require.NoError(t, err)
	require.Equal(t, int64(id), v)

	var fromInt ID
	require.NoError(t, fromInt.Scan(int64(id)))
	require.Equal(t, id, fromInt)

	var fromBytes ID
	require.NoError(t, fromBytes.Scan([]byte(id.String())))
	require.Equal(t, id, fromBytes)

	var fromString ID
	require.NoError(t, fromString.Scan(id.String()))
	require.Equal(t, id, fromString)

	var fromNull ID
	require.NoError(t, fromNull.Scan(nil))
	require.Equal(t, Null, fromNull)

	var bad ID
	require.Error(t, bad.Scan(3.14))
}

func TestFromBytes_LengthMismatchIsAbsent(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 7, 9, 16} {
		_, ok := FromBytes(make([]byte, n))
		require.False(t, ok, "length %d should decode as absent", n)
	}
}

func TestAppendBytes_BigEndianLayout(t *testing.T) {
	t.Parallel()

	b := AppendBytes(nil, FromUint64(0x0102030405060708))
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, b)
}
