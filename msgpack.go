package tod

import (
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

var (
	_ msgpack.CustomEncoder = Time{}
	_ msgpack.CustomDecoder = (*Time)(nil)
	_ msgpack.CustomEncoder = NullTime{}
	_ msgpack.CustomDecoder = (*NullTime)(nil)
)

// EncodeMsgpack writes the datum as a msgpack integer.
func (t Time) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeInt(Encode(t))
}

// DecodeMsgpack reads an integer datum and rejects nil with ErrNull.
//
// When a Time is decoded by reflection (msgpack.Unmarshal, struct fields),
// msgpack resets the value to its zero on nil without calling DecodeMsgpack,
// which reads back as midnight. Use NullTime wherever nil may appear.
func (t *Time) DecodeMsgpack(dec *msgpack.Decoder) error {
	c, err := dec.PeekCode()
	if err != nil {
		return err
	}
	if c == msgpcode.Nil {
		return ErrNull
	}
	raw, err := dec.DecodeInt64()
	if err != nil {
		return err
	}
	v, err := DecodeMicros(raw)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// EncodeMsgpack writes nil for an absent value, otherwise the datum.
func (n NullTime) EncodeMsgpack(enc *msgpack.Encoder) error {
	if !n.Valid {
		return enc.EncodeNil()
	}
	return n.Time.EncodeMsgpack(enc)
}

// DecodeMsgpack reads nil as an absent value, otherwise an integer datum.
func (n *NullTime) DecodeMsgpack(dec *msgpack.Decoder) error {
	c, err := dec.PeekCode()
	if err != nil {
		return err
	}
	if c == msgpcode.Nil {
		*n = NullTime{}
		return dec.DecodeNil()
	}
	var t Time
	if err := t.DecodeMsgpack(dec); err != nil {
		return err
	}
	*n = Some(t)
	return nil
}
