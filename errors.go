package tod

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by every *RangeError via errors.Is.
	ErrOutOfRange = errors.New("tod: component out of range")

	// ErrNull is returned when an absent value is decoded into a Time.
	// Absent values belong in a NullTime.
	ErrNull = errors.New("tod: null value for non-nullable Time")
)

// Component names one field of a Time in a RangeError.
type Component int

const (
	Hour Component = iota
	Minute
	Second
	Microsecond
)

func (c Component) String() string {
	switch c {
	case Hour:
		return "hour"
	case Minute:
		return "minute"
	case Second:
		return "second"
	case Microsecond:
		return "microsecond"
	default:
		return fmt.Sprintf("Component(%d)", int(c))
	}
}

// maxValue is the largest legal value of the component; the smallest is always 0.
func (c Component) maxValue() int64 {
	switch c {
	case Hour:
		return 23
	case Minute:
		return minutesPerHour - 1
	case Second:
		return secondsPerMinute - 1
	case Microsecond:
		return MicrosPerSecond - 1
	default:
		panic(fmt.Errorf("invalid component %d", int(c)))
	}
}

// RangeError reports a component outside its domain. When the component was
// derived from a datum, Decoded is set and Raw holds that datum.
type RangeError struct {
	Component Component
	Value     int64
	Min       int64
	Max       int64
	Raw       int64
	Decoded   bool
}

func (e *RangeError) Error() string {
	if e.Decoded {
		return fmt.Sprintf("tod: decoding %d: %v %d out of range [%d, %d]", e.Raw, e.Component, e.Value, e.Min, e.Max)
	}
	return fmt.Sprintf("tod: %v %d out of range [%d, %d]", e.Component, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
