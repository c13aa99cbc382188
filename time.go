package tod

import "time"

const (
	MicrosPerSecond int64 = 1_000_000
	MicrosPerMinute int64 = 60 * MicrosPerSecond
	MicrosPerHour   int64 = 60 * MicrosPerMinute
	MicrosPerDay    int64 = 24 * MicrosPerHour

	minutesPerHour   = 60
	secondsPerMinute = 60
)

// Time is a time of day with microsecond precision. The zero value is
// midnight. Values are only obtained through the validating constructors
// or the decoder, so every Time in circulation is in range.
type Time struct {
	hour   uint8
	minute uint8
	second uint8
	micro  uint32
}

// FromHMSMicro returns the time of day with the given components, or
// a *RangeError naming the first component outside its domain.
func FromHMSMicro(hour, minute, second, microsecond int) (Time, error) {
	return newTime(int64(hour), int64(minute), int64(second), int64(microsecond))
}

// FromHMS is FromHMSMicro with zero microseconds.
func FromHMS(hour, minute, second int) (Time, error) {
	return FromHMSMicro(hour, minute, second, 0)
}

func MustHMSMicro(hour, minute, second, microsecond int) Time {
	t, err := FromHMSMicro(hour, minute, second, microsecond)
	if err != nil {
		panic(err)
	}
	return t
}

func MustHMS(hour, minute, second int) Time {
	return MustHMSMicro(hour, minute, second, 0)
}

// FromClock takes the wall clock reading of t in its own location,
// truncating nanoseconds to microseconds.
func FromClock(t time.Time) Time {
	h, m, s := t.Clock()
	return Time{uint8(h), uint8(m), uint8(s), uint32(t.Nanosecond() / 1000)}
}

// newTime is the only place components are validated. Components arrive
// as int64 so that decoded values are checked before any narrowing.
func newTime(hour, minute, second, micro int64) (Time, error) {
	if err := checkRange(Hour, hour); err != nil {
		return Time{}, err
	}
	if err := checkRange(Minute, minute); err != nil {
		return Time{}, err
	}
	if err := checkRange(Second, second); err != nil {
		return Time{}, err
	}
	if err := checkRange(Microsecond, micro); err != nil {
		return Time{}, err
	}
	return Time{uint8(hour), uint8(minute), uint8(second), uint32(micro)}, nil
}

func checkRange(c Component, v int64) error {
	hi := c.maxValue()
	if v < 0 || v > hi {
		return &RangeError{Component: c, Value: v, Min: 0, Max: hi}
	}
	return nil
}

func (t Time) Hour() int        { return int(t.hour) }
func (t Time) Minute() int      { return int(t.minute) }
func (t Time) Second() int      { return int(t.second) }
func (t Time) Microsecond() int { return int(t.micro) }

func (t Time) WithHour(hour int) (Time, error) {
	return newTime(int64(hour), int64(t.minute), int64(t.second), int64(t.micro))
}

func (t Time) WithMinute(minute int) (Time, error) {
	return newTime(int64(t.hour), int64(minute), int64(t.second), int64(t.micro))
}

func (t Time) WithSecond(second int) (Time, error) {
	return newTime(int64(t.hour), int64(t.minute), int64(second), int64(t.micro))
}

func (t Time) WithMicrosecond(microsecond int) (Time, error) {
	return newTime(int64(t.hour), int64(t.minute), int64(t.second), int64(microsecond))
}

// Compare returns -1, 0 or +1 depending on whether t is before, equal to
// or after u.
func (t Time) Compare(u Time) int {
	a, b := Encode(t), Encode(u)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (t Time) Before(u Time) bool { return t.Compare(u) < 0 }
func (t Time) After(u Time) bool  { return t.Compare(u) > 0 }

func (t Time) IsMidnight() bool { return t == Time{} }

// Duration is the time elapsed since midnight.
func (t Time) Duration() time.Duration {
	return time.Duration(Encode(t)) * time.Microsecond
}
