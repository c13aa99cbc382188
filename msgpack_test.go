package tod

import (
	"bytes"
	"errors"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

type shift struct {
	Name  string   `msgpack:"name"`
	Start Time     `msgpack:"start"`
	End   NullTime `msgpack:"end"`
}

func TestMsgpackRoundTrip(t *testing.T) {
	orig := shift{
		Name:  "night",
		Start: MustHMSMicro(22, 15, 0, 500),
		End:   Some(MustHMS(6, 0, 0)),
	}
	raw, err := msgpack.Marshal(orig)
	if err != nil {
		t.Fatal(err)
	}
	var back shift
	if err := msgpack.Unmarshal(raw, &back); err != nil {
		t.Fatal(err)
	}
	eq(t, back, orig)

	orig.End = NullTime{}
	raw, err = msgpack.Marshal(orig)
	if err != nil {
		t.Fatal(err)
	}
	back = shift{End: Some(MustHMS(1, 1, 1))}
	if err := msgpack.Unmarshal(raw, &back); err != nil {
		t.Fatal(err)
	}
	eq(t, back, orig)
}

func TestMsgpackDatumIsInteger(t *testing.T) {
	raw, err := msgpack.Marshal(MustHMS(1, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	var v int64
	if err := msgpack.Unmarshal(raw, &v); err != nil {
		t.Fatal(err)
	}
	eq(t, v, MicrosPerHour)
}

func TestMsgpackRejectsOutOfRange(t *testing.T) {
	for _, raw := range []int64{-1, MicrosPerDay} {
		data, err := msgpack.Marshal(raw)
		if err != nil {
			t.Fatal(err)
		}

		var v Time
		err = msgpack.Unmarshal(data, &v)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Unmarshal(%d) into Time err = %v, wanted ErrOutOfRange", raw, err)
		}

		var n NullTime
		err = msgpack.Unmarshal(data, &n)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Unmarshal(%d) into NullTime err = %v, wanted ErrOutOfRange", raw, err)
		}
		eq(t, n.Valid, false)
	}
}

func TestMsgpackNilIntoNullTime(t *testing.T) {
	data, err := msgpack.Marshal(nil)
	if err != nil {
		t.Fatal(err)
	}
	var n NullTime
	if err := msgpack.Unmarshal(data, &n); err != nil {
		t.Fatal(err)
	}
	eq(t, n.Valid, false)
}

func TestMsgpackNilIntoTime(t *testing.T) {
	data, err := msgpack.Marshal(nil)
	if err != nil {
		t.Fatal(err)
	}

	v := MustHMS(5, 0, 0)
	err = v.DecodeMsgpack(msgpack.NewDecoder(bytes.NewReader(data)))
	if !errors.Is(err, ErrNull) {
		t.Fatalf("DecodeMsgpack(nil) err = %v, wanted ErrNull", err)
	}
	eq(t, v, MustHMS(5, 0, 0))

	n := Some(MustHMS(5, 0, 0))
	if err := n.DecodeMsgpack(msgpack.NewDecoder(bytes.NewReader(data))); err != nil {
		t.Fatal(err)
	}
	eq(t, n, NullTime{})
}

// opening decodes itself field by field, the way hand-written decoders
// call into Time.
type opening struct {
	Opens Time
}

func (o *opening) DecodeMsgpack(dec *msgpack.Decoder) error {
	return o.Opens.DecodeMsgpack(dec)
}

func TestMsgpackNilThroughCustomDecoder(t *testing.T) {
	data, err := msgpack.Marshal(nil)
	if err != nil {
		t.Fatal(err)
	}
	o := opening{MustHMS(9, 0, 0)}
	err = o.DecodeMsgpack(msgpack.NewDecoder(bytes.NewReader(data)))
	if !errors.Is(err, ErrNull) {
		t.Fatalf("err = %v, wanted ErrNull", err)
	}
	eq(t, o.Opens, MustHMS(9, 0, 0))

	data, err = msgpack.Marshal(MicrosPerHour)
	if err != nil {
		t.Fatal(err)
	}
	if err := o.DecodeMsgpack(msgpack.NewDecoder(bytes.NewReader(data))); err != nil {
		t.Fatal(err)
	}
	eq(t, o.Opens, MustHMS(1, 0, 0))
}
