package tod

import "errors"

// Datum is the raw boundary value: microseconds since midnight, plus
// a flag saying the value is absent. Value is meaningless when Null is set.
type Datum struct {
	Value int64
	Null  bool
}

// NullTime is a Time that may be absent, in the manner of sql.NullTime.
type NullTime struct {
	Time  Time
	Valid bool
}

// Some returns a valid NullTime holding t.
func Some(t Time) NullTime {
	return NullTime{Time: t, Valid: true}
}

// Decode turns a datum into a time of day. A null datum decodes to an
// invalid NullTime and never fails, whatever its Value.
func Decode(d Datum) (NullTime, error) {
	if d.Null {
		return NullTime{}, nil
	}
	t, err := DecodeMicros(d.Value)
	if err != nil {
		return NullTime{}, err
	}
	return Some(t), nil
}

// DecodeMicros splits a count of microseconds since midnight into
// components. Anything outside [0, MicrosPerDay) yields a *RangeError.
func DecodeMicros(raw int64) (Time, error) {
	v := raw

	hour := v / MicrosPerHour
	v -= hour * MicrosPerHour

	minute := v / MicrosPerMinute
	v -= minute * MicrosPerMinute

	second := v / MicrosPerSecond
	v -= second * MicrosPerSecond

	t, err := newTime(hour, minute, second, v)
	if err != nil {
		var re *RangeError
		if errors.As(err, &re) {
			re.Raw, re.Decoded = raw, true
		}
		return Time{}, err
	}
	return t, nil
}
