/*
Package tod implements a time-of-day value and its codec to and from
a 64-bit datum holding the number of microseconds since midnight.

There is no date and no time zone. The legal datum range is
[0, MicrosPerDay); anything else is rejected with a *RangeError rather than
wrapped or clamped.

# Datum encoding

	datum = ((hour*60 + minute)*60 + second)*1_000_000 + microsecond

Decoding divides the datum by the hour, minute and second unit in that
order using integer arithmetic only, and validates the derived components
with the same rule as FromHMSMicro. A Datum also carries a Null flag;
a null datum decodes to an invalid NullTime, which is not an error.

# Text form

Times print as HH-MM-SS (see TextLayout). The text form drops
microseconds and there is no parser for it.

# Other encodings

Time and NullTime implement msgpack.CustomEncoder/CustomDecoder and
sql.Scanner/driver.Valuer, exchanging the datum as an integer (or nil).
Decoding nil into a Time fails with ErrNull, except when msgpack decodes a
Time by reflection: it zeroes the value on nil before any hook runs, so such
a field reads back as midnight. Declare fields NullTime when nil may appear.
AppendKey produces an 8-byte key that sorts in time order; package todstore
uses it to index stored values.
*/
package tod
