package tod

// Encode returns the number of microseconds since midnight. It cannot fail:
// a Time is always in range.
func Encode(t Time) int64 {
	return ((int64(t.hour)*minutesPerHour+int64(t.minute))*secondsPerMinute+int64(t.second))*MicrosPerSecond + int64(t.micro)
}

// Micros is Encode as a method.
func (t Time) Micros() int64 {
	return Encode(t)
}

// EncodeNull returns a null datum (with Value 0) for an invalid n,
// otherwise the encoded time.
func EncodeNull(n NullTime) Datum {
	if !n.Valid {
		return Datum{Null: true}
	}
	return Datum{Value: Encode(n.Time)}
}
