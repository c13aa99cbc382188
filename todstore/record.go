package todstore

import (
	"encoding/binary"

	"github.com/andreyvit/tod"
	"github.com/cespare/xxhash/v2"
)

// Record layout:
//
//	flags    1 byte   (rfNull when the value is absent)
//	datum    8 bytes  big-endian microseconds since midnight, zero when null
//	checksum 8 bytes  big-endian xxhash64 of flags and datum
const (
	recordHeaderSize = 1 + 8
	recordSize       = recordHeaderSize + 8
)

type recordFlags byte

const (
	rfNull recordFlags = 1 << iota

	rfSupportedMask = rfNull
)

func appendRecord(buf []byte, v tod.NullTime) []byte {
	d := tod.EncodeNull(v)
	off := len(buf)
	var flags recordFlags
	if d.Null {
		flags |= rfNull
		d.Value = 0
	}
	buf = append(buf, byte(flags))
	buf = binary.BigEndian.AppendUint64(buf, uint64(d.Value))
	return binary.BigEndian.AppendUint64(buf, xxhash.Sum64(buf[off:]))
}

func decodeRecord(column, key string, data []byte) (tod.NullTime, error) {
	if len(data) != recordSize {
		return tod.NullTime{}, dataErrf(column, key, data, errRecordSize, "invalid record")
	}
	sum := binary.BigEndian.Uint64(data[recordHeaderSize:])
	if xxhash.Sum64(data[:recordHeaderSize]) != sum {
		return tod.NullTime{}, dataErrf(column, key, data, errChecksum, "corrupted record")
	}
	flags := recordFlags(data[0])
	if flags&^rfSupportedMask != 0 {
		return tod.NullTime{}, dataErrf(column, key, data, errUnsupportedFlag, "invalid record flags %02x", byte(flags))
	}
	d := tod.Datum{
		Value: int64(binary.BigEndian.Uint64(data[1:recordHeaderSize])),
		Null:  flags&rfNull != 0,
	}
	v, err := tod.Decode(d)
	if err != nil {
		return tod.NullTime{}, dataErrf(column, key, data, err, "invalid datum")
	}
	return v, nil
}
