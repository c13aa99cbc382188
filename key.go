package tod

import (
	"encoding/binary"
	"fmt"
)

// KeySize is the length of a key produced by AppendKey.
const KeySize = 8

// AppendKey appends the big-endian datum of t. Datums are never negative,
// so comparing keys bytewise orders them by time of day.
func AppendKey(buf []byte, t Time) []byte {
	return binary.BigEndian.AppendUint64(buf, uint64(Encode(t)))
}

// TimeFromKey decodes a key written by AppendKey. k must be exactly
// KeySize bytes; an out-of-range datum yields a *RangeError.
func TimeFromKey(k []byte) (Time, error) {
	if len(k) != KeySize {
		return Time{}, fmt.Errorf("tod: key is %d bytes, wanted %d", len(k), KeySize)
	}
	return DecodeMicros(int64(binary.BigEndian.Uint64(k)))
}
